package request

type UpdateThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

type UpdateToleranceRequest struct {
	Tolerance *int `json:"tolerance" binding:"required"`
}
