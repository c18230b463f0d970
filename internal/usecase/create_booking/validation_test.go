package create_booking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequest(t *testing.T) {
	valid := func() *Request {
		return &Request{
			PackageID: "thursday-morning",
			UserName:  "Karim",
			UserPhone: "+961 70 123 456",
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(r *Request) {},
			wantErr: false,
		},
		{
			name:    "missing package id",
			mutate:  func(r *Request) { r.PackageID = "" },
			wantErr: true,
		},
		{
			name:    "empty name",
			mutate:  func(r *Request) { r.UserName = "" },
			wantErr: true,
		},
		{
			name:    "whitespace-only name",
			mutate:  func(r *Request) { r.UserName = "   " },
			wantErr: true,
		},
		{
			name:    "empty phone",
			mutate:  func(r *Request) { r.UserPhone = "" },
			wantErr: true,
		},
		{
			name:    "whitespace-only phone",
			mutate:  func(r *Request) { r.UserPhone = "\t " },
			wantErr: true,
		},
		{
			name:    "name too long",
			mutate:  func(r *Request) { r.UserName = strings.Repeat("a", 101) },
			wantErr: true,
		},
		{
			name:    "phone too long",
			mutate:  func(r *Request) { r.UserPhone = strings.Repeat("1", 31) },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)

			err := validateRequest(req)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
