package patients

import (
	"net/http"

	"github.com/Maitreya20/care-tap-ai/internal/app/contracts"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/constvars"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/dto/requests"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/exceptions"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PatientController struct {
	PatientUsecase contracts.PatientUsecase
	Log            *zap.Logger
}

func NewPatientController(patientUsecase contracts.PatientUsecase, log *zap.Logger) *PatientController {
	return &PatientController{
		PatientUsecase: patientUsecase,
		Log:            log,
	}
}

func (c *PatientController) ResolveIdentifier(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ResolveIdentifier)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := c.PatientUsecase.ResolveIdentifier(request.Input)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessResolveIdentifier, result)
}

func (c *PatientController) GetPatientByID(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")

	patient, err := c.PatientUsecase.GetPatientByID(r.Context(), patientID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessGetPatient, patient)
}
