package response

import "budget-api/internal/usecase/readmodel"

type SettingsResponse struct {
	Theme     string `json:"theme"`
	Tolerance int    `json:"tolerance"`
}

func FromSettings(rm *readmodel.Settings) SettingsResponse {
	return SettingsResponse{
		Theme:     rm.Theme,
		Tolerance: rm.Tolerance,
	}
}
