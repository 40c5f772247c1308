package diagnosis

import (
	"net/http"

	"github.com/Maitreya20/care-tap-ai/internal/app/contracts"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/constvars"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/dto/requests"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/dto/responses"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/exceptions"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/utils"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DiagnosisController struct {
	DiagnosisUsecase contracts.DiagnosisUsecase
	Log              *zap.Logger
}

func NewDiagnosisController(diagnosisUsecase contracts.DiagnosisUsecase, log *zap.Logger) *DiagnosisController {
	return &DiagnosisController{
		DiagnosisUsecase: diagnosisUsecase,
		Log:              log,
	}
}

func (c *DiagnosisController) RequestAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(constvars.CONTEXT_UID).(string)
	if !ok || userID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	request := new(requests.AnalysisRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrPatientDataRequired(err))
		return
	}

	result, err := c.DiagnosisUsecase.RequestAnalysis(r.Context(), userID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, responses.Analysis{Analysis: result})
}
