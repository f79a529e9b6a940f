package entity

// Name is the three-part person name stored on a user record.
// Middle is optional and kept empty when not provided.
type Name struct {
	First  string `db:"first_name"`
	Middle string `db:"middle_name"`
	Last   string `db:"last_name"`
}

// Address shape is shared between users and cards.
type Address struct {
	State       string `db:"address_state"`
	Country     string `db:"address_country"`
	City        string `db:"address_city"`
	Street      string `db:"address_street"`
	HouseNumber int    `db:"address_house_number"`
	Zip         int    `db:"address_zip"`
}

type Image struct {
	URL string `db:"image_url"`
	Alt string `db:"image_alt"`
}

// StateNotDefined is the sentinel stored when no state was supplied
const StateNotDefined = "not defined"
