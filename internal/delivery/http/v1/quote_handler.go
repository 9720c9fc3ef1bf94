package v1

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"form-relay-backend/internal/delivery/http/response"
	"form-relay-backend/internal/domain"
	"form-relay-backend/internal/usecase"
	"form-relay-backend/pkg/apperror"
	"form-relay-backend/pkg/logger"
	"form-relay-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

const logoField = "logoFile"

type QuoteHandler struct {
	quoteUC       domain.QuoteUsecase
	maxUploadSize int64
}

func NewQuoteHandler(public *gin.RouterGroup, quoteUC domain.QuoteUsecase, maxUploadSize int64, mw ...gin.HandlerFunc) {
	handler := &QuoteHandler{
		quoteUC:       quoteUC,
		maxUploadSize: maxUploadSize,
	}

	public.POST("/devis-request", append(mw, handler.SubmitQuote)...)
}

// SubmitQuote godoc
// @Summary      Submit Quote Request
// @Description  Send a "devis" request, forwarding the optional logo as an email attachment.
// @Tags         quote
// @Accept       multipart/form-data
// @Produce      json
// @Param        name                  formData  string  true   "Full name"
// @Param        phone                 formData  string  true   "Phone"
// @Param        email                 formData  string  true   "Email"
// @Param        postalCode            formData  string  true   "Postal code"
// @Param        address               formData  string  false  "Address"
// @Param        manufacturingProcess  formData  string  true   "Manufacturing process"
// @Param        photoMontage          formData  bool    false  "Photo montage requested"
// @Param        projectDescription    formData  string  false  "Project description"
// @Param        logoFile              formData  file    false  "Logo"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /devis-request [post]
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var req domain.QuoteRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailure(c, err, usecase.MsgMissingRequiredFields)
		return
	}

	logo, err := h.readLogo(c)
	if err != nil {
		bindFailure(c, err, msgUnreadableFile)
		return
	}
	req.LogoFile = logo

	if err := h.quoteUC.SubmitQuoteRequest(c.Request.Context(), &req); err != nil {
		respondFailure(c, err, "Erreur lors de l'envoi de la demande de devis.")
		return
	}

	response.Success(c, http.StatusOK, "Demande de devis soumise avec succès.", nil)
}

// readLogo returns nil when the form carries no file.
func (h *QuoteHandler) readLogo(c *gin.Context) (*domain.UploadedFile, error) {
	header, err := c.FormFile(logoField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if h.maxUploadSize > 0 && header.Size > h.maxUploadSize {
		return nil, apperror.BadRequest(msgFileTooLarge)
	}

	data, err := readAll(header)
	if err != nil {
		return nil, err
	}

	inspection := security.InspectFile(header.Filename, header.Header.Get("Content-Type"), data)
	if inspection.Mismatch() {
		logger.Log.Warn("Upload content does not match declared type",
			"filename", inspection.Filename,
			"extension", inspection.Extension,
			"declared", inspection.DeclaredMIME,
			"detected", inspection.DetectedMIME,
		)
	}

	return &domain.UploadedFile{
		Filename:    header.Filename,
		ContentType: inspection.ContentType,
		Content:     data,
	}, nil
}

func readAll(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return data, nil
}
