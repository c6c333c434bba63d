package reporting

import (
	"io"

	"github.com/jhoicas/Devoluciones-api/internal/application/dto"
)

// Exporter escribe un reporte terminado en un formato de archivo (xlsx, pdf).
type Exporter interface {
	ContentType() string
	Export(w io.Writer, resp *dto.ReportResponse) error
}
