package v1

import "github.com/shenikar/tourist_safety_system/internal/models"

// DTOToZoneModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToZoneModel(dto any) *models.Zone {
	switch v := dto.(type) {
	case CreateZoneRequest:
		return &models.Zone{
			Name:         v.Name,
			Kind:         models.ZoneKind(v.Kind),
			Center:       models.Position{Latitude: v.Latitude, Longitude: v.Longitude},
			RadiusMeters: v.RadiusMeters,
			Region:       v.Region,
		}
	case UpdateZoneRequest:
		return &models.Zone{
			Name:         v.Name,
			Kind:         models.ZoneKind(v.Kind),
			Center:       models.Position{Latitude: v.Latitude, Longitude: v.Longitude},
			RadiusMeters: v.RadiusMeters,
			Region:       v.Region,
			Active:       v.Active,
		}
	}
	return nil
}

// ModelToZoneResponse преобразует доменную модель в DTO для ответа
func ModelToZoneResponse(model *models.Zone) *ZoneResponse {
	return &ZoneResponse{
		ID:           model.ID,
		Name:         model.Name,
		Kind:         string(model.Kind),
		Latitude:     model.Center.Latitude,
		Longitude:    model.Center.Longitude,
		RadiusMeters: model.RadiusMeters,
		Region:       model.Region,
		Active:       model.Active,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// ModelsToZoneResponses преобразует слайс моделей в слайс DTO
func ModelsToZoneResponses(models []*models.Zone) []*ZoneResponse {
	responses := make([]*ZoneResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToZoneResponse(model)
	}
	return responses
}

// DistancesToNearbyResponses преобразует результаты поиска по близости в DTO
func DistancesToNearbyResponses(distances []models.ZoneDistance) []*NearbyZoneResponse {
	responses := make([]*NearbyZoneResponse, len(distances))
	for i, d := range distances {
		responses[i] = &NearbyZoneResponse{
			Zone:           ModelToZoneResponse(d.Zone),
			DistanceMeters: d.DistanceMeters,
		}
	}
	return responses
}

// ModelToAlertResponse преобразует доменную модель тревоги в DTO для ответа
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:          model.ID,
		Kind:        string(model.Kind),
		TouristID:   model.TouristID,
		Latitude:    model.Location.Latitude,
		Longitude:   model.Location.Longitude,
		Severity:    string(model.Severity),
		Status:      string(model.Status),
		Description: model.Description,
		AuthorityID: model.AuthorityID,
		Version:     model.Version,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// ModelToTouristResponse преобразует доменную модель туриста в DTO для ответа.
// Позиция раскрывается только при включенном обмене местоположением.
func ModelToTouristResponse(model *models.Tourist) *TouristResponse {
	resp := &TouristResponse{
		ID:              model.ID,
		Name:            model.Name,
		Phone:           model.Phone,
		Status:          string(model.Status),
		SafetyScore:     model.SafetyScore,
		LocationSharing: model.LocationSharing,
		EmergencyContact: EmergencyContactResponse{
			Name:  model.EmergencyContact.Name,
			Phone: model.EmergencyContact.Phone,
			Email: model.EmergencyContact.Email,
		},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
	if model.LocationSharing && model.LastPosition != nil {
		lat := model.LastPosition.Latitude
		lon := model.LastPosition.Longitude
		resp.Latitude = &lat
		resp.Longitude = &lon
	}
	return resp
}

// ModelToAuthorityResponse преобразует доменную модель ответственного в DTO для ответа
func ModelToAuthorityResponse(model *models.Authority) *AuthorityResponse {
	return &AuthorityResponse{
		ID:         model.ID,
		Name:       model.Name,
		Department: string(model.Department),
		Region:     model.Region,
		OnDuty:     model.OnDuty,
		Phone:      model.Phone,
		Email:      model.Email,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

// ModelToIncidentResponse преобразует доменную модель инцидента в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:                  model.ID,
		ReferenceNumber:     model.ReferenceNumber,
		ReporterID:          model.ReporterID,
		Type:                model.Type,
		Title:               model.Title,
		Description:         model.Description,
		Latitude:            model.Location.Latitude,
		Longitude:           model.Location.Longitude,
		Severity:            string(model.Severity),
		Witnesses:           model.Witnesses,
		EvidenceRefs:        model.EvidenceRefs,
		AssignedAuthorityID: model.AssignedAuthorityID,
		AlertID:             model.AlertID,
		Status:              string(model.Status),
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}
