package v1

import (
	"net/http"

	"local-jobs-backend/internal/delivery/http/response"
	"local-jobs-backend/internal/domain"
	"local-jobs-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SeekerHandler struct {
	seekerUC domain.JobSeekerUsecase
}

func NewSeekerHandler(rg *gin.RouterGroup, seekerUC domain.JobSeekerUsecase) {
	handler := &SeekerHandler{seekerUC: seekerUC}

	api := rg.Group("/api")
	{
		api.GET("/jobseekers", handler.List)
		api.POST("/save-profile", handler.SaveProfile)
	}
}

type SaveProfileRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Age        *int   `json:"age"`
	JobType    string `json:"jobType"`
	Skills     string `json:"skills"`
	Education  string `json:"education"`
	Location   string `json:"location"`
	Contact    string `json:"contact"`
	Experience string `json:"experience"`
	Email      string `json:"email"`
}

// ListJobSeekers godoc
// @Summary      List all job seekers
// @Description  Combined view: bulk-ingested records followed by user-submitted ones
// @Tags         jobseekers
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/jobseekers [get]
func (h *SeekerHandler) List(c *gin.Context) {
	seekers, err := h.seekerUC.ListJobSeekers(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job seeker list", gin.H{
		"count":   len(seekers),
		"seekers": seekers,
	})
}

// SaveProfile godoc
// @Summary      Save a job seeker profile
// @Description  Upserts the profile keyed by its normalized identifier; a later submission with the same identifier replaces the earlier one
// @Tags         jobseekers
// @Accept       json
// @Produce      json
// @Param        profile  body      SaveProfileRequest  true  "Profile JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /api/save-profile [post]
func (h *SeekerHandler) SaveProfile(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Incomplete profile data (identifier or name missing)"))
		return
	}

	err := h.seekerUC.SaveProfile(c, domain.ProfileInput{
		Identifier: req.Identifier,
		Name:       req.Name,
		Age:        req.Age,
		JobType:    req.JobType,
		Skills:     req.Skills,
		Education:  req.Education,
		Location:   req.Location,
		Contact:    req.Contact,
		Experience: req.Experience,
		Email:      req.Email,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved successfully and added to job seekers list", nil)
}
