package components

import (
	"budget-api/internal/handler"
	"budget-api/internal/handler/api"
	"budget-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewMonthlyExpenseHandler,
		api.NewTemplateHandler,
		api.NewIncomeHandler,
		api.NewExpenseHandler,
		api.NewSettingsHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	monthly *api.MonthlyExpenseHandler,
	template *api.TemplateHandler,
	income *api.IncomeHandler,
	expense *api.ExpenseHandler,
	settings *api.SettingsHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Monthly:  monthly,
		Template: template,
		Income:   income,
		Expense:  expense,
		Settings: settings,
	}
}
