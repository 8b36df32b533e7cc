package entity

// Animal es un animal resgatado por el refugio.
// Adopted (status_adocao) es estado derivado: sólo lo modifica el servicio de adopciones.
type Animal struct {
	ID         int64  `json:"id_animal"`
	Name       string `json:"nome"`
	Species    string `json:"especie"`
	Age        int    `json:"idade"`
	RescueDate Date   `json:"data_resgate"`
	Adopted    bool   `json:"status_adocao"`
}

type Adopter struct {
	ID          int64  `json:"id_adotante"`
	Name        string `json:"nome"`
	Contact     string `json:"contato"`
	Address     string `json:"endereco"`
	Preferences string `json:"preferencias"` // preferencia de especie, texto libre
}

type Attendant struct {
	ID   int64  `json:"id_atendente"`
	Name string `json:"nome"`
}

// Adoption vincula un animal con un adoptante. Los atendentes viven en la
// relación adocao_atend y se cargan aparte (ver AdoptionDetail).
type Adoption struct {
	ID        int64 `json:"id_adocao"`
	Date      Date  `json:"data_adocao"`
	Cancelled bool  `json:"cancelamento"`
	AnimalID  int64 `json:"id_animal"`
	AdopterID int64 `json:"id_adotante"`
}

// Active indica si la adopción todavía retiene al animal.
func (a Adoption) Active() bool {
	return !a.Cancelled
}

// AdoptionDetail es una adopción con sus relaciones cargadas.
type AdoptionDetail struct {
	Adoption
	Animal     Animal      `json:"animal"`
	Adopter    Adopter     `json:"adotante"`
	Attendants []Attendant `json:"atendentes"`
}

// AnimalAdoptionRow es una fila del listado detallado de animales:
// una por cada adopción del animal.
type AnimalAdoptionRow struct {
	Animal     Animal      `json:"animal"`
	Adoption   Adoption    `json:"adocao"`
	Adopter    Adopter     `json:"adotante"`
	Attendants []Attendant `json:"atendentes"`
}

// ActiveAdoptionRow es la proyección plana del reporte de adopciones vigentes.
// Attendant* es nil cuando la adopción no tiene atendentes vinculados.
type ActiveAdoptionRow struct {
	AdoptionID    int64   `json:"id_adocao"`
	AnimalID      int64   `json:"id_animal"`
	AnimalName    string  `json:"animal_nome"`
	AdopterID     int64   `json:"id_adotante"`
	AdopterName   string  `json:"adotante_nome"`
	AttendantID   *int64  `json:"id_atendente"`
	AttendantName *string `json:"atendente_nome"`
}
