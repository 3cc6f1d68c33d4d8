package handler

import (
	"github.com/jobboard/jobboard-api/internal/core/domain"
	"github.com/jobboard/jobboard-api/internal/core/ports"
)

// --- Request → Service input ---

func toJobInput(req jobRequest) ports.JobInput {
	return ports.JobInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		JobType:     req.JobType,
		Category:    req.Category,
		PostedAt:    req.PostedAt,
		ExpiresAt:   req.ExpiresAt,
	}
}

// --- Service result → HTTP response ---

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Location:    j.Location,
		JobType:     j.JobType,
		Category:    j.Category,
		PostedAt:    j.PostedAt.UTC(),
		ExpiresAt:   j.ExpiresAt,
		EmployerID:  j.EmployerID,
	}
}

func toJobListResponse(p *ports.JobPage) listJobsResponse {
	items := make([]jobResponse, len(p.Items))
	for i, j := range p.Items {
		items[i] = toJobResponse(j)
	}
	return listJobsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      p.TotalItems,
			Page:       p.Page,
			Limit:      p.PageSize,
			TotalPages: p.TotalPages,
		},
	}
}
