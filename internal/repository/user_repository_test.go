package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/samandr77/microservices/vacations/internal/entity"
	"github.com/samandr77/microservices/vacations/internal/repository"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	users *repository.UserRepository
	roles *repository.RoleRepository
}

func (ts *UserRepositoryTestSuite) SetupTest() {
	db := repository.SetupTestDatabase(ts.T())
	ts.users = repository.NewUserRepository(db)
	ts.roles = repository.NewRoleRepository(db)
}

func TestUserRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(UserRepositoryTestSuite))
}

func newTestUser(email string) entity.User {
	return entity.User{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        email,
		PasswordHash: "hash",
		RoleID:       entity.RoleIDCustomer,
	}
}

func (ts *UserRepositoryTestSuite) TestCreateAndGet() {
	ctx := context.Background()

	created, err := ts.users.Create(ctx, newTestUser("jane@example.com"))
	ts.Require().NoError(err)
	ts.Require().Positive(created.ID)

	ts.Run("by_id", func() {
		got, err := ts.users.GetByID(ctx, created.ID)
		ts.Require().NoError(err)
		ts.Require().Equal(created, got)
	})

	ts.Run("by_email", func() {
		got, err := ts.users.GetByEmail(ctx, "jane@example.com")
		ts.Require().NoError(err)
		ts.Require().Equal(created.ID, got.ID)
	})

	ts.Run("unknown_email", func() {
		_, err := ts.users.GetByEmail(ctx, "nobody@example.com")
		ts.Require().ErrorIs(err, entity.ErrNotFound)
	})

	ts.Run("email_exists", func() {
		exists, err := ts.users.EmailExists(ctx, "jane@example.com")
		ts.Require().NoError(err)
		ts.Require().True(exists)

		exists, err = ts.users.EmailExists(ctx, "nobody@example.com")
		ts.Require().NoError(err)
		ts.Require().False(exists)
	})

	ts.Run("duplicate_email", func() {
		_, err := ts.users.Create(ctx, newTestUser("jane@example.com"))
		ts.Require().ErrorIs(err, entity.ErrAlreadyExists)
	})
}

func (ts *UserRepositoryTestSuite) TestUpdate() {
	ctx := context.Background()

	created, err := ts.users.Create(ctx, newTestUser("update@example.com"))
	ts.Require().NoError(err)

	roleID := entity.RoleIDAdmin
	name := "Janet"

	err = ts.users.Update(ctx, created.ID, entity.UserUpdate{FirstName: &name, RoleID: &roleID})
	ts.Require().NoError(err)

	got, err := ts.users.GetByID(ctx, created.ID)
	ts.Require().NoError(err)
	ts.Require().Equal("Janet", got.FirstName)
	ts.Require().True(got.IsAdmin())

	err = ts.users.Update(ctx, created.ID, entity.UserUpdate{})
	ts.Require().ErrorIs(err, entity.ErrMissingInput)

	err = ts.users.Update(ctx, created.ID+1000, entity.UserUpdate{FirstName: &name})
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *UserRepositoryTestSuite) TestDelete() {
	ctx := context.Background()

	created, err := ts.users.Create(ctx, newTestUser("delete@example.com"))
	ts.Require().NoError(err)

	ts.Require().NoError(ts.users.Delete(ctx, created.ID))

	_, err = ts.users.GetByID(ctx, created.ID)
	ts.Require().ErrorIs(err, entity.ErrNotFound)

	err = ts.users.Delete(ctx, created.ID)
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *UserRepositoryTestSuite) TestRoles() {
	ctx := context.Background()

	roles, err := ts.roles.GetAll(ctx)
	ts.Require().NoError(err)
	ts.Require().GreaterOrEqual(len(roles), 2)

	customer, err := ts.roles.GetByName(ctx, entity.RoleCustomer)
	ts.Require().NoError(err)
	ts.Require().Equal(entity.RoleIDCustomer, customer.ID)

	admin, err := ts.roles.GetByID(ctx, entity.RoleIDAdmin)
	ts.Require().NoError(err)
	ts.Require().Equal(entity.RoleAdmin, admin.Name)

	_, err = ts.roles.Create(ctx, entity.RoleAdmin)
	ts.Require().ErrorIs(err, entity.ErrAlreadyExists)

	created, err := ts.roles.Create(ctx, "auditor")
	ts.Require().NoError(err)

	name := "reviewer"
	ts.Require().NoError(ts.roles.Update(ctx, created.ID, entity.RoleUpdate{Name: &name}))
	ts.Require().NoError(ts.roles.Delete(ctx, created.ID))

	_, err = ts.roles.GetByID(ctx, created.ID)
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}
