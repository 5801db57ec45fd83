package components

import (
	repo_impl "budget-api/internal/infra/repository"
	"budget-api/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewTemplateRepository,
			fx.As(new(usecase.TemplateRepository)),
			fx.As(new(usecase.TemplateReader)),
		),
		fx.Annotate(
			repo_impl.NewSnapshotRepository,
			fx.As(new(usecase.SnapshotRepository)),
		),
		fx.Annotate(
			repo_impl.NewIncomeRepository,
			fx.As(new(usecase.IncomeRepository)),
		),
		fx.Annotate(
			repo_impl.NewExpenseRepository,
			fx.As(new(usecase.ExpenseRepository)),
		),
		fx.Annotate(
			repo_impl.NewSettingsRepository,
			fx.As(new(usecase.SettingsRepository)),
		),
	),
)
