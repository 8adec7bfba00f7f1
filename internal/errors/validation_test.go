package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex-cli/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("base_url", "is required")
	ve.AddFieldErrorf("fallback_count", "must be at least %d", 1)

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal(
		"validation failed: base_url: is required; fallback_count: must be at least 1",
		ve.Error(),
	)

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("base_url", "is required").
		Fieldf("catalog_limit", "must be between %d and %d", 1, 2000).
		RequiredField("transport").
		InvalidField("strategy", "not a known strategy")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("catalog_limit", 5000, 1, 2000, vb)
	errors.ValidateRange("fallback_count", 1010, 1, 100000, vb)
	errors.ValidateRange("timeout_seconds", 0, 1, 60, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["catalog_limit"][0], "must be between 1 and 2000")
	s.Assert().Contains(validationErrors["timeout_seconds"][0], "must be between 1 and 60")
	s.Assert().NotContains(validationErrors, "fallback_count")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"index", "catalog"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("strategy", "shuffle", allowed, vb)
	errors.ValidateEnum("fallback_strategy", "index", allowed, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["strategy"][0], "must be one of: index, catalog")
	s.Assert().NotContains(validationErrors, "fallback_strategy")
}

func (s *ValidationTestSuite) TestValidateAbsoluteURL() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"https url", "https://pokeapi.co/api/v2/", false},
		{"http url with port", "http://127.0.0.1:8080/api/v2/", false},
		{"empty", "", true},
		{"relative path", "/api/v2/pokemon/25", true},
		{"unsupported scheme", "ftp://pokeapi.co/api/v2/", true},
		{"no host", "https:///api/v2/", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateAbsoluteURL("base_url", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().True(errors.IsInvalidArgument(err))
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}
