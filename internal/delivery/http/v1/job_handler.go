package v1

import (
	"net/http"

	"local-jobs-backend/internal/delivery/http/response"
	"local-jobs-backend/internal/domain"
	"local-jobs-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(rg *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := rg.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.GetDetails)
		jobs.POST("", handler.Create)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}
}

type CreateJobRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description" binding:"required"`
	Category    string         `json:"category" binding:"required"`
	Contact     string         `json:"contact" binding:"required"`
	Location    string         `json:"location"`
	Price       string         `json:"price"`
	Extra       map[string]any `json:"extra"`
}

// UpdateJobRequest uses pointers so omitted fields are left unchanged.
// id and createdAt are not bindable and can never be patched.
type UpdateJobRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Category    *string         `json:"category"`
	Location    *string         `json:"location"`
	Contact     *string         `json:"contact"`
	Price       *string         `json:"price"`
	Extra       *map[string]any `json:"extra"`
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Get all jobs, optionally filtered by category, location and free text
// @Tags         jobs
// @Produce      json
// @Param        category  query     string  false  "Category (exact, case-insensitive)"
// @Param        location  query     string  false  "Location substring"
// @Param        q         query     string  false  "Free-text search over title, description, category"
// @Success      200       {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := domain.JobFilter{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Query:    c.Query("q"),
	}

	jobs, err := h.jobUC.ListJobs(c, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"count": len(jobs),
		"jobs":  jobs,
	})
}

// GetJobDetails godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJobDetails(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// CreateJob godoc
// @Summary      Create a new job
// @Description  Create a new job posting; title, description, category and contact are required
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("title, description, category and contact are required"))
		return
	}

	job, err := h.jobUC.CreateJob(c, domain.JobInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Contact:     req.Contact,
		Location:    req.Location,
		Price:       req.Price,
		Extra:       req.Extra,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// UpdateJob godoc
// @Summary      Update a job
// @Description  Patch an existing job posting; only supplied fields change
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string           true  "Job ID"
// @Param        job  body      UpdateJobRequest true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid JSON body"))
		return
	}

	job, err := h.jobUC.UpdateJob(c, c.Param("id"), domain.JobPatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Contact:     req.Contact,
		Price:       req.Price,
		Extra:       req.Extra,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated successfully", job)
}

// DeleteJob godoc
// @Summary      Delete a job
// @Description  Permanently delete a job posting; returns the removed record
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	removed, err := h.jobUC.DeleteJob(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully", gin.H{
		"removed": removed,
	})
}
