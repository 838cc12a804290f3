package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNew() {
	err := New(ErrCodeInvalidParameter, "bad value")
	suite.Equal("[100] bad value", err.Error())
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestNewf() {
	err := Newf(ErrCodeNodeNotFound, "node %s not found", "node-1")
	suite.Equal("[200] node node-1 not found", err.Error())
}

func (suite *ErrorTestSuite) TestWrap() {
	cause := fmt.Errorf("disk full")
	err := Wrap(ErrCodeStorageSaveFailed, "failed to save board", cause)
	suite.Equal("[401] failed to save board: disk full", err.Error())
	suite.Equal(cause, err.Unwrap())
}

func (suite *ErrorTestSuite) TestWrapf() {
	cause := fmt.Errorf("connection refused")
	err := Wrapf(ErrCodeHistoryFetchFailed, cause, "failed to fetch %s", "NVDA")
	suite.Equal("[500] failed to fetch NVDA: connection refused", err.Error())
}

func (suite *ErrorTestSuite) TestGetCode() {
	err := New(ErrCodeDecodeFailed, "bad blob")
	suite.Equal(ErrCodeDecodeFailed, GetCode(err))

	plain := fmt.Errorf("plain error")
	suite.Equal(ErrCodeUnknown, GetCode(plain))
}

func (suite *ErrorTestSuite) TestGetCodeWrappedChain() {
	inner := New(ErrCodeStorageLoadFailed, "load failed")
	outer := fmt.Errorf("outer: %w", inner)
	suite.Equal(ErrCodeStorageLoadFailed, GetCode(outer))
}

func (suite *ErrorTestSuite) TestHasCode() {
	err := New(ErrCodeFormatMismatch, "format too new")
	suite.True(HasCode(err, ErrCodeFormatMismatch))
	suite.False(HasCode(err, ErrCodeDecodeFailed))
}

func (suite *ErrorTestSuite) TestIsAndAs() {
	inner := New(ErrCodeEdgeNotFound, "edge missing")
	outer := fmt.Errorf("wrapped: %w", inner)
	suite.True(Is(outer, inner))

	var target *Error
	suite.True(As(outer, &target))
	suite.Equal(ErrCodeEdgeNotFound, target.Code)
}
