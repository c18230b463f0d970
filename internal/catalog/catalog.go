// Package catalog holds the static offering of the club: the single court and
// the recurring weekly session packages. The catalog is immutable after process
// start; it can be overridden through config.toml, otherwise the built-in club
// data is used.
package catalog

import (
	"fmt"
	"time"

	"github.com/padelplus/booking-service/internal/config"
	"github.com/padelplus/booking-service/internal/domain"
)

// Catalog неизменяемый каталог корта и пакетов
type Catalog struct {
	court    domain.Court
	packages []domain.SessionPackage
}

// Default returns the built-in catalog of the club: one panoramic court and
// two weekly group sessions (Thursday for 4 players, Saturday for 8).
func Default() *Catalog {
	return &Catalog{
		court: domain.Court{
			ID:           "achrafieh-1",
			Name:         "The Padelist Achrafieh",
			Type:         domain.CourtPanoramic,
			PricePerHour: 7.5,
			Rating:       5.0,
			Features:     []string{"Achrafieh High-End", "Tapis WPT", "Éclairage Premium", "Zone Lounge"},
		},
		packages: []domain.SessionPackage{
			{
				ID:             "thursday-morning",
				Name:           "Cours Collectif Jeudi",
				Description:    "Une session technique limitée à 4 joueurs.",
				TimeRange:      "10:00 - 11:00",
				MaxPlayers:     4,
				PricePerPerson: 7.5,
				TargetWeekday:  time.Thursday,
				Quorum:         4,
			},
			{
				ID:             "saturday-morning-8p",
				Name:           "Match Coaching Samedi",
				Description:    "Session avec tournoi interne et conseils tactiques.",
				TimeRange:      "10:30 - 12:00",
				MaxPlayers:     8,
				PricePerPerson: 12,
				TargetWeekday:  time.Saturday,
				Quorum:         8,
			},
		},
	}
}

// FromConfig builds a catalog from the config section, falling back to the
// built-in data for any part that is not configured.
func FromConfig(cfg config.CatalogConfig) (*Catalog, error) {
	c := Default()

	if cfg.Court != nil {
		c.court = domain.Court{
			ID:           cfg.Court.ID,
			Name:         cfg.Court.Name,
			Type:         domain.CourtType(cfg.Court.Type),
			PricePerHour: cfg.Court.PricePerHour,
			Rating:       cfg.Court.Rating,
			Features:     cfg.Court.Features,
		}
	}

	if len(cfg.Packages) > 0 {
		packages := make([]domain.SessionPackage, 0, len(cfg.Packages))
		seen := make(map[string]struct{}, len(cfg.Packages))
		for _, p := range cfg.Packages {
			if _, ok := seen[p.ID]; ok {
				return nil, fmt.Errorf("catalog: duplicate package id %q", p.ID)
			}
			seen[p.ID] = struct{}{}

			packages = append(packages, domain.SessionPackage{
				ID:             p.ID,
				Name:           p.Name,
				Description:    p.Description,
				TimeRange:      p.TimeRange,
				MaxPlayers:     p.MaxPlayers,
				PricePerPerson: p.PricePerPerson,
				TargetWeekday:  time.Weekday(p.TargetWeekday),
				Quorum:         p.Quorum,
			})
		}
		c.packages = packages
	}

	return c, nil
}

// Court returns the single venue of the club
func (c *Catalog) Court() domain.Court {
	return c.court
}

// Packages returns all weekly session packages in catalog order
func (c *Catalog) Packages() []domain.SessionPackage {
	out := make([]domain.SessionPackage, len(c.packages))
	copy(out, c.packages)
	return out
}

// PackageByID returns the package with the given id, or false
func (c *Catalog) PackageByID(id string) (domain.SessionPackage, bool) {
	for _, p := range c.packages {
		if p.ID == id {
			return p, true
		}
	}
	return domain.SessionPackage{}, false
}
