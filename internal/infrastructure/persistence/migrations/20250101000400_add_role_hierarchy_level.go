package migrations

import "gorm.io/gorm"

// NULL means the default custom level. Range checks live in the role
// aggregate, not in the schema.
type roleHierarchyV2 struct {
	HierarchyLevel *int
}

func (roleHierarchyV2) TableName() string { return "roles" }

func upRoleHierarchyLevel(tx *gorm.DB) error {
	return addColumnIfMissing(tx, &roleHierarchyV2{}, "HierarchyLevel")
}

func downRoleHierarchyLevel(tx *gorm.DB) error {
	return dropColumnIfExists(tx, &roleHierarchyV2{}, "HierarchyLevel")
}
