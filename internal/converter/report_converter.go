package converter

import (
	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/domain/entity"
)

func PatientPrescriptionRowsToItems(rows []entity.PatientPrescriptionRow) []dto.PatientPrescriptionItem {
	items := make([]dto.PatientPrescriptionItem, len(rows))
	for i, row := range rows {
		items[i] = dto.PatientPrescriptionItem{
			PrescriptionID: row.PrescriptionID,
			Date:           row.Date.Format(DateLayout),
			DoctorID:       row.DoctorID,
			DoctorName:     row.DoctorName,
		}
	}
	return items
}

func PrescriptionLineRowsToItems(rows []entity.PrescriptionLineRow) []dto.PrescriptionLineItem {
	items := make([]dto.PrescriptionLineItem, len(rows))
	for i, row := range rows {
		items[i] = dto.PrescriptionLineItem{
			PrescriptionID: row.PrescriptionID,
			DrugID:         row.DrugID,
			TradeName:      row.TradeName,
			Formula:        row.Formula,
			CompanyName:    row.CompanyName,
			Quantity:       row.Quantity,
		}
	}
	return items
}

func CompanyCatalogRowsToItems(rows []entity.CompanyCatalogRow) []dto.CompanyCatalogItem {
	items := make([]dto.CompanyCatalogItem, len(rows))
	for i, row := range rows {
		items[i] = dto.CompanyCatalogItem{
			DrugID:        row.DrugID,
			TradeName:     row.TradeName,
			Formula:       row.Formula,
			PharmacyCount: row.PharmacyCount,
		}
	}
	return items
}

func PharmacyStockRowsToItems(rows []entity.PharmacyStockRow) []dto.PharmacyStockItem {
	items := make([]dto.PharmacyStockItem, len(rows))
	for i, row := range rows {
		items[i] = dto.PharmacyStockItem{
			DrugID:      row.DrugID,
			TradeName:   row.TradeName,
			CompanyName: row.CompanyName,
			Price:       row.Price,
			Stock:       row.Stock,
		}
	}
	return items
}

func DoctorPatientRowsToItems(rows []entity.DoctorPatientRow) []dto.DoctorPatientItem {
	items := make([]dto.DoctorPatientItem, len(rows))
	for i, row := range rows {
		items[i] = dto.DoctorPatientItem{
			PatientID:         row.PatientID,
			Name:              row.Name,
			Age:               row.Age,
			PrescriptionCount: row.PrescriptionCount,
		}
	}
	return items
}
