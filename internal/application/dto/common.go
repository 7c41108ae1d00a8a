package dto

import "github.com/shopspring/decimal"

func init() {
	// amt viaja como número JSON ({"amt":100.5}), no como string entre
	// comillas; shopspring serializa con comillas salvo que se desactive aquí.
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout formato de fecha calendario (sin componente horario) usado en
// add_date y paid_date, igual que el tipo DATE de PostgreSQL serializado.
const DateLayout = "2006-01-02"

// DeleteResponse respuesta de los DELETE. Se devuelve incondicionalmente:
// borrar un code/id inexistente también reporta éxito.
type DeleteResponse struct {
	Msg string `json:"msg"`
}

// Deleted respuesta canónica de borrado.
func Deleted() DeleteResponse {
	return DeleteResponse{Msg: "DELETED!"}
}
