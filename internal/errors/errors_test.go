package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/samdwyer/dungeonascend/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "biome not found",
			expected: "NOT_FOUND: biome not found",
		},
		{
			name:     "out of range error",
			code:     errors.CodeOutOfRange,
			message:  "floor 0 outside 1..100",
			expected: "OUT_OF_RANGE: floor 0 outside 1..100",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("enemy not found").
		WithMeta("name", "frost_wyrm").
		WithMeta("biome", "snow")

	s.Assert().Equal("frost_wyrm", err.Meta["name"])
	s.Assert().Equal("snow", err.Meta["biome"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("unexpected end of JSON input")
	wrapped := errors.Wrap(baseErr, "failed to parse biomes.json")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to parse biomes.json", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
	s.Assert().Nil(errors.Wrap(nil, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	original := errors.NotFoundf("resource %q not found", "stardust").WithMeta("name", "stardust")
	wrapped := errors.Wrapf(original, "query failed")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().True(errors.IsNotFound(wrapped))
	s.Assert().Equal("stardust", errors.GetMeta(wrapped)["name"])
	s.Assert().True(errors.Is(wrapped, errors.NotFound("")))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := errors.NotFound("config missing").WithMeta("path", "config.yaml")
	wrapped := errors.WrapWithCode(base, errors.CodeInvalidArgument, "bad config")

	s.Assert().Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Assert().Equal("config.yaml", wrapped.Meta["path"])
	s.Assert().True(errors.IsInvalidArgument(wrapped))
}

func (s *ErrorsTestSuite) TestHelpers() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Assert().Equal("floor out of range", errors.GetMessage(errors.OutOfRangef("floor out of range")))
	s.Assert().True(errors.IsOutOfRange(errors.OutOfRangef("x")))
	s.Assert().Empty(errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestExitCode() {
	s.Assert().Equal(0, errors.CodeOK.ExitCode())
	s.Assert().Equal(2, errors.CodeInvalidArgument.ExitCode())
	s.Assert().Equal(2, errors.CodeOutOfRange.ExitCode())
	s.Assert().Equal(3, errors.CodeNotFound.ExitCode())
	s.Assert().Equal(1, errors.CodeInternal.ExitCode())
}
