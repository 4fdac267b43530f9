package test

import (
	"errors"
	"strconv"
	"strings"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare checks password against the predictable hash.
func (h HasherStub) Compare(hash, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues reversible tokens for tests.
type StrategyStub struct {
	IssueFn func(int64) (string, error)
	ParseFn func(string) (int64, error)
}

// IssueToken encodes the admin id into a readable token.
func (s StrategyStub) IssueToken(adminID int64) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(adminID)
	}
	return "token:" + strconv.FormatInt(adminID, 10), nil
}

// ParseToken decodes tokens produced by IssueToken.
func (s StrategyStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	raw, ok := strings.CutPrefix(token, "token:")
	if !ok {
		return 0, errors.New("malformed token")
	}
	return strconv.ParseInt(raw, 10, 64)
}

// Name identifies the stub strategy.
func (StrategyStub) Name() string { return "stub" }

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	ID      int64
	Err     error
	ParseFn func(string) (int64, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	return s.ID, nil
}
