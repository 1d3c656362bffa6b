package controllers

import (
	"log"
	"net/http"

	"rollupbridge/internal/application/dto"
	portsin "rollupbridge/internal/application/ports/in"
)

type FundsMessageController struct {
	useCase portsin.GetFundsMessageUseCase
	logger  *log.Logger
}

func NewFundsMessageController(useCase portsin.GetFundsMessageUseCase, logger *log.Logger) *FundsMessageController {
	return &FundsMessageController{useCase: useCase, logger: logger}
}

func (c *FundsMessageController) GetFundsMessage(w http.ResponseWriter, r *http.Request) {
	output, appErr := c.useCase.Execute(r.Context(), dto.GetFundsMessageQuery{})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/funds-message method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
