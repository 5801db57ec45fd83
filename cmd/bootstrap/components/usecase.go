package components

import (
	"budget-api/internal/pkg/clock"
	"budget-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			usecase.NewAuthUseCase,
			fx.As(new(usecase.AuthUseCase)),
			fx.As(new(usecase.TokenValidator)),
		),
		usecase.NewMonthlyExpenseUseCase,
		usecase.NewTemplateUseCase,
		usecase.NewIncomeUseCase,
		usecase.NewExpenseUseCase,
		usecase.NewSettingsUseCase,
	),
)
