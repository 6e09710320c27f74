package repository

// Models lists every table owned by this service, in dependency order.
func Models() []any {
	return []any{
		&OrganizationUnit{},
		&Staff{},
		&Group{},
		&StaffGroup{},
		&Question{},
		&Evaluation{},
		&User{},
	}
}
