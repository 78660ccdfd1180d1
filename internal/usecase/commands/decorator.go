package commands

import (
	"context"
	"log/slog"

	"decor-market/internal/domain/decorator"
	"decor-market/internal/domain/user"
	"decor-market/internal/infra"
	"decor-market/internal/pkg/errs"
)

type ApplyDecoratorInput struct {
	DisplayName string
	Specialties []string
}

type DecoratorCommands interface {
	Apply(ctx context.Context, actor user.Actor, input ApplyDecoratorInput) (*decorator.Decorator, error)
	Approve(ctx context.Context, actor user.Actor, email string) (*decorator.Decorator, error)
	Disable(ctx context.Context, actor user.Actor, email string) (*decorator.Decorator, error)
}

type decoratorCommandsImpl struct {
	decoratorRepo DecoratorRepository
}

func NewDecoratorCommands(decoratorRepo DecoratorRepository) DecoratorCommands {
	return &decoratorCommandsImpl{decoratorRepo: decoratorRepo}
}

func (c *decoratorCommandsImpl) Apply(ctx context.Context, actor user.Actor, input ApplyDecoratorInput) (*decorator.Decorator, error) {
	email, err := user.NewEmail(actor.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity, err := decorator.NewDecorator(email, input.DisplayName, input.Specialties)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.decoratorRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrDecoratorAlreadyExists
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("decorator application received", "email", email.String())
	return entity, nil
}

func (c *decoratorCommandsImpl) Approve(ctx context.Context, actor user.Actor, email string) (*decorator.Decorator, error) {
	return c.mutate(ctx, actor, email, func(d *decorator.Decorator) error { return d.Approve() }, "decorator approved")
}

func (c *decoratorCommandsImpl) Disable(ctx context.Context, actor user.Actor, email string) (*decorator.Decorator, error) {
	return c.mutate(ctx, actor, email, func(d *decorator.Decorator) error { return d.Disable() }, "decorator disabled")
}

func (c *decoratorCommandsImpl) mutate(
	ctx context.Context,
	actor user.Actor,
	email string,
	change func(*decorator.Decorator) error,
	auditMsg string,
) (*decorator.Decorator, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrUnauthorized
	}

	normalized, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity, err := c.decoratorRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDecoratorNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := change(entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.decoratorRepo.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info(auditMsg, "email", normalized.String(), "admin", actor.Email)
	return entity, nil
}
