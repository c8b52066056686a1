package repository

import (
	"context"

	"shapeme/internal/domain/repository"
)

// StubRepositoryFactory hands out fixed repository mocks, letting tests wire
// one set of expectations for everything that happens inside a transaction.
type StubRepositoryFactory struct {
	UserRepository     repository.UserRepository
	CategoryRepository repository.CategoryRepository
	RecipeRepository   repository.RecipeRepository
}

func (f *StubRepositoryFactory) UserRepo() repository.UserRepository {
	return f.UserRepository
}

func (f *StubRepositoryFactory) CategoryRepo() repository.CategoryRepository {
	return f.CategoryRepository
}

func (f *StubRepositoryFactory) RecipeRepo() repository.RecipeRepository {
	return f.RecipeRepository
}

// StubTransactionManager runs the callback directly against the stub factory.
// There is no real transaction; rollback semantics are the repositories'
// mocks' problem, not the test's.
type StubTransactionManager struct {
	Factory *StubRepositoryFactory
}

func (tm *StubTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(tm.Factory)
}

var (
	_ repository.RepositoryFactory  = (*StubRepositoryFactory)(nil)
	_ repository.TransactionManager = (*StubTransactionManager)(nil)
)
