package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelplus/booking-service/internal/config"
)

func TestDefault(t *testing.T) {
	c := Default()

	court := c.Court()
	assert.Equal(t, "achrafieh-1", court.ID)
	assert.Equal(t, "The Padelist Achrafieh", court.Name)

	packages := c.Packages()
	require.Len(t, packages, 2)
	assert.Equal(t, time.Thursday, packages[0].TargetWeekday)
	assert.Equal(t, 4, packages[0].MaxPlayers)
	assert.Equal(t, time.Saturday, packages[1].TargetWeekday)
	assert.Equal(t, 8, packages[1].MaxPlayers)
}

func TestPackageByID(t *testing.T) {
	c := Default()

	pkg, ok := c.PackageByID("thursday-morning")
	require.True(t, ok)
	assert.Equal(t, "thursday-morning", pkg.ID)

	_, ok = c.PackageByID("unknown")
	assert.False(t, ok)
}

func TestFromConfig_OverridesPackages(t *testing.T) {
	cfg := config.CatalogConfig{
		Packages: []config.PackageConfig{
			{
				ID:             "monday-evening",
				Name:           "Lundi soir",
				TimeRange:      "19:00 - 20:30",
				MaxPlayers:     6,
				PricePerPerson: 10,
				TargetWeekday:  1,
				Quorum:         4,
			},
		},
	}

	c, err := FromConfig(cfg)

	require.NoError(t, err)
	packages := c.Packages()
	require.Len(t, packages, 1)
	assert.Equal(t, "monday-evening", packages[0].ID)
	assert.Equal(t, time.Monday, packages[0].TargetWeekday)

	// Корт не задан в конфиге - остаётся встроенный
	assert.Equal(t, "achrafieh-1", c.Court().ID)
}

func TestFromConfig_DuplicatePackageID(t *testing.T) {
	cfg := config.CatalogConfig{
		Packages: []config.PackageConfig{
			{ID: "thursday-morning", MaxPlayers: 4},
			{ID: "thursday-morning", MaxPlayers: 8},
		},
	}

	_, err := FromConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate package id")
}

func TestPackages_ReturnsCopy(t *testing.T) {
	c := Default()

	packages := c.Packages()
	packages[0].MaxPlayers = 99

	assert.Equal(t, 4, c.Packages()[0].MaxPlayers)
}
