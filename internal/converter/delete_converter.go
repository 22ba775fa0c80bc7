package converter

import (
	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/domain/entity"
)

// CascadeResultToResponse keeps the removal order of the cascade.
func CascadeResultToResponse(result *entity.CascadeResult) *dto.DeleteResponse {
	if result == nil {
		return nil
	}

	removed := make([]dto.RemovedCount, 0, len(result.Order))
	for _, kind := range result.Order {
		removed = append(removed, dto.RemovedCount{
			Entity: kind.String(),
			Rows:   result.Removed[kind],
		})
	}

	return &dto.DeleteResponse{
		Entity:  result.Entity.String(),
		Key:     result.Key,
		Removed: removed,
	}
}
