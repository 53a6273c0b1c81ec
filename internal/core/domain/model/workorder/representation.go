package workorder

import "time"

// timestampLayout is the external rendering format for all work-order timestamps.
const timestampLayout = "2006-01-02 15:04:05"

// Representation converts the aggregate into its plain external form.
//
// This is the only place where minor-unit amounts become decimal major units:
// each linked service and material renders as {id, name, value} with value
// divided by 100, and total_services, total_materials and total_overall are
// summed in major units. Client and vehicle render as nested plain maps;
// timestamps render with timestampLayout or nil when unset.
//
// The function is pure: it reads the aggregate and allocates a fresh map on
// every call.
func (w *WorkOrder) Representation() map[string]any {
	services := make([]map[string]any, 0, len(w.services))
	totalServices := 0.0
	for _, line := range w.services {
		value := line.Price.Major()
		totalServices += value
		services = append(services, map[string]any{
			"id":    line.ID.String(),
			"name":  line.Name,
			"value": value,
		})
	}

	materials := make([]map[string]any, 0, len(w.materials))
	totalMaterials := 0.0
	for _, line := range w.materials {
		value := line.InternalPrice.Major()
		totalMaterials += value
		materials = append(materials, map[string]any{
			"id":    line.ID.String(),
			"name":  line.Name,
			"value": value,
		})
	}

	var description any
	if w.description != nil {
		description = *w.description
	}

	return map[string]any{
		"id":          w.id.String(),
		"description": description,
		"status":      string(w.status),
		"opened_at":   w.openedAt.Format(timestampLayout),
		"finished_at": formatNullableTime(w.finishedAt),
		"updated_at":  formatNullableTime(w.updatedAt),
		"client": map[string]any{
			"id":       w.client.ID.String(),
			"name":     w.client.Name,
			"document": w.client.Document,
			"email":    w.client.Email,
			"phone":    w.client.Phone,
		},
		"vehicle": map[string]any{
			"id":    w.vehicle.ID.String(),
			"brand": w.vehicle.Brand,
			"model": w.vehicle.Model,
			"plate": w.vehicle.Plate,
			"year":  w.vehicle.Year,
		},
		"services":        services,
		"materials":       materials,
		"total_services":  totalServices,
		"total_materials": totalMaterials,
		"total_overall":   totalServices + totalMaterials,
	}
}

func formatNullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(timestampLayout)
}
