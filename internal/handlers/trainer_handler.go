package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	trainerdomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httpresp"
	uctrainer "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/trainer"
)

// MaxAvatarBytes caps the multipart upload before decoding.
const MaxAvatarBytes = 5 << 20

// ======================================================
// HANDLER
// ======================================================

type TrainerHandler struct {
	search *uctrainer.SearchTrainers
	get    *uctrainer.GetTrainer
	update *uctrainer.UpdateTrainerProfile
	avatar *uctrainer.UploadAvatar
}

func NewTrainerHandler(
	search *uctrainer.SearchTrainers,
	get *uctrainer.GetTrainer,
	update *uctrainer.UpdateTrainerProfile,
	avatar *uctrainer.UploadAvatar,
) *TrainerHandler {
	return &TrainerHandler{
		search: search,
		get:    get,
		update: update,
		avatar: avatar,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type TrainerProfileRequest struct {
	Name            string   `json:"name" binding:"omitempty,min=2,max=50,personname"`
	Specialties     []string `json:"specialties" binding:"required,min=1,max=5,dive,required,max=40"`
	Location        string   `json:"location" binding:"required,max=100"`
	PricePerSession float64  `json:"pricePerSession" binding:"required,gte=10,lte=200"`
	ExperienceYears int      `json:"experienceYears" binding:"gte=0,lte=50"`
	Bio             string   `json:"bio" binding:"required,min=20,max=300,nopersonaldata"`
}

// ======================================================
// PUBLIC
// ======================================================

// List serves GET /trainers with optional filters.
func (h *TrainerHandler) List(c *gin.Context) {
	f := trainerdomain.Filter{
		Query:     c.Query("q"),
		Location:  c.Query("location"),
		Specialty: c.Query("specialty"),
	}

	for param, dst := range map[string]*float64{
		"minPrice":  &f.MinPrice,
		"maxPrice":  &f.MaxPrice,
		"minRating": &f.MinRating,
	} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			httperr.BadRequest(c, "invalid_query", param+" must be a non-negative number.")
			return
		}
		*dst = v
	}

	trainers, err := h.search.Execute(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, "trainers", trainers, nil)
}

func (h *TrainerHandler) Get(c *gin.Context) {
	t, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"trainer": t})
}

// ======================================================
// TRAINER ONLY
// ======================================================

func (h *TrainerHandler) UpdateMe(c *gin.Context) {
	var req TrainerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	t, err := h.update.Execute(c.Request.Context(), currentUserID(c), trainerdomain.Profile{
		Name:            req.Name,
		Specialties:     req.Specialties,
		Location:        req.Location,
		PricePerSession: req.PricePerSession,
		ExperienceYears: req.ExperienceYears,
		Bio:             req.Bio,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"trainer": t})
}

func (h *TrainerHandler) UploadAvatar(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxAvatarBytes)

	fh, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "avatar file is required.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "avatar file is unreadable.")
		return
	}
	defer f.Close()

	t, err := h.avatar.Execute(c.Request.Context(), currentUserID(c), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"trainer": t})
}
