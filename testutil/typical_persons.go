package testutil

import "github.com/Daskott/kontacts/models"

// Fresh copies are returned on every call, so tests are free to mutate them.

func Alice() *models.Person {
	return models.NewPerson("Alice Pauline", "94351253", "alice@example.com", "123, Jurong West Ave 6",
		models.NewEmergencyContact("Bob Pauline", "91234567", "Father"),
		models.NewEmergencyContact("Carol Pauline", "95352563", "Mother"),
	)
}

func Benson() *models.Person {
	return models.NewPerson("Benson Meier", "98765432", "johnd@example.com", "311, Clementi Ave 2",
		models.NewEmergencyContact("Dan Meier", "87652533", "Brother"),
	)
}

func Carl() *models.Person {
	return models.NewPerson("Carl Kurz", "95352563", "heinz@example.com", "wall street",
		models.NewEmergencyContact("Elle Kurz", "94822245", "Sister"),
		models.NewEmergencyContact("Fiona Kurz", "94824271", "Aunt"),
		models.NewEmergencyContact("George Best", "94824421", "Friend"),
	)
}

func TypicalPersons() []*models.Person {
	return []*models.Person{Alice(), Benson(), Carl()}
}
