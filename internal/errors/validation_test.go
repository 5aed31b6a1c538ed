package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellbook/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("BaseURL", "is required")
	ve.AddFieldError("CacheTTL", "must not be negative")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal("validation failed: BaseURL: is required; CacheTTL: must not be negative", ve.Error())

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Client").
		Fieldf("HTTPTimeout", "must be at least %d", 1).
		InvalidField("BaseURL", "missing scheme")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Client: is required")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Assert().NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("index", "  ", vb)
	s.Assert().Error(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRequired("index", "fireball", vb)
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidateAbsoluteURL() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"https url", "https://www.dnd5eapi.co/api/2014/", false},
		{"http url", "http://127.0.0.1:8080/api/", false},
		{"no scheme", "www.dnd5eapi.co/api", true},
		{"ftp scheme", "ftp://example.test/", true},
		{"garbage", "://", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateAbsoluteURL("BaseURL", tc.value, vb)
			if tc.shouldErr {
				s.Assert().Error(vb.Build())
			} else {
				s.Assert().NoError(vb.Build())
			}
		})
	}
}
