package uow

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type fakeRepo struct {
	n int
}

type TransactionTestSuite struct {
	suite.Suite
	calls int
	tx    *Transaction
}

func TestTransactionSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

func (s *TransactionTestSuite) SetupTest() {
	s.calls = 0
	s.tx = NewTransaction(nil, map[RepositoryName]RepositoryFactory{
		"fake": func(DBTX) Repository {
			s.calls++
			return &fakeRepo{n: s.calls}
		},
	})
}

func (s *TransactionTestSuite) TestGetCachesInstances() {
	first, err := s.tx.Get("fake")
	s.Require().NoError(err)
	second, err := s.tx.Get("fake")
	s.Require().NoError(err)

	s.Same(first, second)
	s.Equal(1, s.calls)
}

func (s *TransactionTestSuite) TestGetAs() {
	repo, err := GetAs[*fakeRepo](s.tx, "fake")
	s.Require().NoError(err)
	s.Equal(1, repo.n)

	_, err = GetAs[*TransactionTestSuite](s.tx, "fake")
	s.Require().ErrorIs(err, ErrInvalidRepositoryType)

	_, err = GetAs[*fakeRepo](s.tx, "missing")
	s.Require().ErrorIs(err, ErrRepositoryNotRegistered)
}

func (s *TransactionTestSuite) TestRegisterDuplicate() {
	u := NewUnitOfWork(nil)
	factory := func(DBTX) Repository { return &fakeRepo{} }
	s.Require().NoError(u.Register("fake", factory))
	s.Require().ErrorIs(u.Register("fake", factory), ErrRepositoryAlreadyRegistered)

	repo, err := GetRepositoryAs[*fakeRepo](u, "fake")
	s.Require().NoError(err)
	s.NotNil(repo)
}
