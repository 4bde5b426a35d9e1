package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hedamo/transparency_api/internal/models"
	"github.com/hedamo/transparency_api/internal/utils"
)

func TestSubmitRequestValidate(t *testing.T) {
	cases := []struct {
		name string
		req  SubmitRequest
		want error
	}{
		{"missing name", SubmitRequest{Category: models.CategoryOther}, utils.ErrMissingName},
		{"blank name", SubmitRequest{Name: "   ", Category: models.CategoryOther}, utils.ErrMissingName},
		{"name too long", SubmitRequest{Name: strings.Repeat("x", 101), Category: models.CategoryOther}, utils.ErrNameTooLong},
		{"missing category", SubmitRequest{Name: "EcoSoap"}, utils.ErrMissingCategory},
		{"unknown category", SubmitRequest{Name: "EcoSoap", Category: "Gadgets"}, utils.ErrInvalidCategory},
		{"valid", SubmitRequest{Name: "EcoSoap", Category: models.CategoryHealthBeauty}, nil},
		{"valid at length limit", SubmitRequest{Name: strings.Repeat("x", 100), Category: models.CategoryOther}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.req.Validate(); !errors.Is(err, c.want) {
				t.Fatalf("Validate() = %v, want %v", err, c.want)
			}
		})
	}
}

// Submit must reject invalid input before touching the repository or the
// scorer; a nil repository would panic if validation did not come first.
func TestSubmitRejectsBeforePersistence(t *testing.T) {
	s := NewProductService(nil, nil)

	_, err := s.Submit(context.Background(), &SubmitRequest{Category: models.CategoryOther})
	if !errors.Is(err, utils.ErrMissingName) {
		t.Fatalf("err = %v, want %v", err, utils.ErrMissingName)
	}

	_, err = s.Submit(context.Background(), &SubmitRequest{Name: "EcoSoap"})
	if !errors.Is(err, utils.ErrMissingCategory) {
		t.Fatalf("err = %v, want %v", err, utils.ErrMissingCategory)
	}
}
