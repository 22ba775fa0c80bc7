package repository

import "gorm.io/gorm/clause"

// Row locks taken inside mutations. Dialects without row locking drop the clause.
var (
	forUpdate = clause.Locking{Strength: "UPDATE"}
	forShare  = clause.Locking{Strength: "SHARE"}
)
