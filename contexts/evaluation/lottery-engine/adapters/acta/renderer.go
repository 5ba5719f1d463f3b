// Package acta renders the human-readable record of a public draw.
package acta

import (
	"bytes"
	"context"
	"fmt"

	"emprende/contexts/evaluation/lottery-engine/ports"
)

// TextRenderer produces a plain-text acta. The document format is a
// boundary concern; swapping in a PDF renderer only means providing another
// ActaRenderer implementation.
type TextRenderer struct{}

func (TextRenderer) RenderActa(_ context.Context, input ports.ActaInput) ([]byte, string, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "ACTA DE SORTEO PUBLICO")
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Descripcion: %s\n", input.Description)
	fmt.Fprintf(&buf, "Fecha: %s\n", input.ExecutedAt.Format("02/01/2006 15:04:05"))
	fmt.Fprintf(&buf, "Total de participantes: %d\n", len(input.Participants))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PARTICIPANTES:")
	for i, participant := range input.Participants {
		fmt.Fprintf(&buf, "%3d. %s %s <%s> (%s)\n",
			i+1, participant.FirstName, participant.LastName, participant.Email, participant.Municipality)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "GANADOR DEL SORTEO:")
	fmt.Fprintf(&buf, "Nombre: %s %s\n", input.Winner.FirstName, input.Winner.LastName)
	fmt.Fprintf(&buf, "Email: %s\n", input.Winner.Email)
	fmt.Fprintf(&buf, "Municipio: %s\n", input.Winner.Municipality)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PROCESO DEL SORTEO:")
	for _, entry := range input.Result.Order {
		fmt.Fprintf(&buf, "Posicion %d: %s (numero aleatorio: %d)\n",
			entry.Position, entry.FullName, entry.AuxNumber)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Semilla aleatoria: %d\n", input.Result.Seed)
	fmt.Fprintf(&buf, "Fecha de ejecucion: %s\n", input.Result.ExecutedAt.Format("2006-01-02T15:04:05Z07:00"))

	name := fmt.Sprintf("acta_sorteo_%s.txt", input.ExecutedAt.Format("20060102_150405"))
	return buf.Bytes(), name, nil
}
