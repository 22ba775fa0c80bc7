package entity

// EntityKind names a table-backed entity in errors, audit rows and cascade results.
type EntityKind string

const (
	KindPatient            EntityKind = "patient"
	KindDoctor             EntityKind = "doctor"
	KindCompany            EntityKind = "pharmaceutical_company"
	KindPharmacy           EntityKind = "pharmacy"
	KindDrug               EntityKind = "drug"
	KindContract           EntityKind = "contract"
	KindPharmacyDrug       EntityKind = "pharmacy_drug"
	KindPrescription       EntityKind = "prescription"
	KindPrescriptionDetail EntityKind = "prescription_detail"
)

func (k EntityKind) String() string {
	return string(k)
}
