// Package pdf renders the pre-service inspection report. Generation runs as
// a fixed sequence of stages (data prep, photo embedding, rendering,
// finalizing) reported through a progress callback; later stages depend on
// fully resolved assets from earlier ones, so nothing runs in parallel.
package pdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jung-kurt/gofpdf"

	"tms_gruas/internal/domain/entities"
	"tms_gruas/internal/usecase/interfaces"
)

var (
	ErrGenerationInFlight = errors.New("a pdf generation for this service is already in progress")
	ErrInvalidPhotoData   = errors.New("invalid photo payload")
)

// Stage labels surfaced through the progress callback.
const (
	StagePreparing = "preparing data"
	StagePhotos    = "embedding photos"
	StageRendering = "rendering document"
	StageCompleted = "completed"
	StageError     = "error"
)

// Generator builds inspection report PDFs. A per-service in-flight set
// rejects concurrent duplicate generation for the same service.
type Generator struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

var _ interfaces.IInspectionPDFGenerator = (*Generator)(nil)

func NewGenerator() *Generator {
	return &Generator{inFlight: make(map[string]struct{})}
}

func (g *Generator) acquire(serviceID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[serviceID]; busy {
		return false
	}
	g.inFlight[serviceID] = struct{}{}
	return true
}

func (g *Generator) release(serviceID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, serviceID)
}

// Generate renders the report. Progress is reported before each stage's work
// begins; on failure the error stage is reported through the same callback
// and no partial document is returned. Once started, a run is not cancelable.
func (g *Generator) Generate(ctx context.Context, svc entities.Service, client entities.Client, form entities.InspectionForm, onProgress interfaces.ProgressFunc) ([]byte, error) {
	if onProgress == nil {
		onProgress = func(int, string) {}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !g.acquire(svc.ID) {
		return nil, ErrGenerationInFlight
	}
	defer g.release(svc.ID)

	onProgress(20, StagePreparing)
	doc := gofpdf.New("P", "mm", "Letter", "")
	doc.SetTitle(fmt.Sprintf("Inspeccion Servicio %d", svc.Folio), true)
	doc.AddPage()
	writeHeader(doc, svc)
	writeServiceDetails(doc, svc, client, form)

	onProgress(60, StagePhotos)
	photos, err := registerPhotos(doc, form)
	if err != nil {
		onProgress(60, StageError)
		return nil, err
	}
	signatures, err := registerSignatures(doc, form)
	if err != nil {
		onProgress(60, StageError)
		return nil, err
	}

	onProgress(90, StageRendering)
	writeChecklist(doc, form)
	writePhotoGrid(doc, photos)
	writeSignatures(doc, form, signatures)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		onProgress(90, StageError)
		return nil, err
	}

	onProgress(100, StageCompleted)
	return buf.Bytes(), nil
}

func writeHeader(doc *gofpdf.Fpdf, svc entities.Service) {
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, "REPORTE DE INSPECCION PRE-SERVICIO", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 7, fmt.Sprintf("Folio servicio: %d", svc.Folio), "", 1, "C", false, 0, "")
	doc.Ln(4)
}

func writeServiceDetails(doc *gofpdf.Fpdf, svc entities.Service, client entities.Client, form entities.InspectionForm) {
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 8, "Datos del servicio", "B", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)

	row := func(label, value string) {
		doc.CellFormat(45, 6, label, "", 0, "L", false, 0, "")
		doc.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
	}
	row("Cliente:", client.Name)
	row("RUT:", client.RUT)
	row("Fecha:", svc.ServiceDate.Format("02-01-2006"))
	row("Origen:", svc.Origin)
	row("Destino:", svc.Destination)
	if form.ClientName != "" {
		row("Recibe:", form.ClientName)
	}
	if form.ClientRUT != "" {
		row("RUT recibe:", form.ClientRUT)
	}
	doc.Ln(3)
}

func writeChecklist(doc *gofpdf.Fpdf, form entities.InspectionForm) {
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 8, "Equipamiento verificado", "B", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	for _, item := range form.EquipmentChecked {
		doc.CellFormat(0, 6, "[x] "+item, "", 1, "L", false, 0, "")
	}
	if form.VehicleObservations != "" {
		doc.Ln(2)
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(0, 8, "Observaciones", "B", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.MultiCell(0, 5, form.VehicleObservations, "", "L", false)
	}
	doc.Ln(3)
}

type embeddedImage struct {
	ref    string
	setKey string
}

// registerPhotos decodes every photo payload and registers it with the
// document so the render stage only places already-resolved assets.
func registerPhotos(doc *gofpdf.Fpdf, form entities.InspectionForm) ([]embeddedImage, error) {
	var out []embeddedImage
	for setName, set := range form.PhotoSets {
		for _, photo := range set {
			imgType, data, err := decodeDataURL(photo.DataURL)
			if err != nil {
				return nil, fmt.Errorf("photo %s: %w", photo.Name, err)
			}
			opts := gofpdf.ImageOptions{ImageType: imgType, ReadDpi: false}
			doc.RegisterImageOptionsReader(photo.Name, opts, bytes.NewReader(data))
			if doc.Err() {
				return nil, fmt.Errorf("photo %s: %w", photo.Name, doc.Error())
			}
			out = append(out, embeddedImage{ref: photo.Name, setKey: setName})
		}
	}
	return out, nil
}

func registerSignatures(doc *gofpdf.Fpdf, form entities.InspectionForm) (map[string]string, error) {
	out := make(map[string]string)
	sigs := map[string]entities.SignatureData{
		"firma-operador": form.OperatorSignature,
		"firma-cliente":  form.ClientSignature,
	}
	for ref, sig := range sigs {
		if sig.IsEmpty() {
			continue
		}
		imgType, data, err := decodeDataURL(string(sig))
		if err != nil {
			return nil, fmt.Errorf("signature %s: %w", ref, err)
		}
		opts := gofpdf.ImageOptions{ImageType: imgType, ReadDpi: false}
		doc.RegisterImageOptionsReader(ref, opts, bytes.NewReader(data))
		if doc.Err() {
			return nil, fmt.Errorf("signature %s: %w", ref, doc.Error())
		}
		out[ref] = ref
	}
	return out, nil
}

func writePhotoGrid(doc *gofpdf.Fpdf, photos []embeddedImage) {
	if len(photos) == 0 {
		return
	}
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 8, "Registro fotografico", "B", 1, "L", false, 0, "")
	doc.Ln(2)

	const (
		imgW    = 85.0
		imgH    = 64.0
		leftX   = 15.0
		rightX  = 110.0
		rowGap  = 4.0
		pageEnd = 250.0
	)
	opts := gofpdf.ImageOptions{}
	for i, photo := range photos {
		if i%2 == 0 && doc.GetY()+imgH > pageEnd {
			doc.AddPage()
		}
		x := leftX
		if i%2 == 1 {
			x = rightX
		}
		y := doc.GetY()
		doc.ImageOptions(photo.ref, x, y, imgW, 0, false, opts, 0, "")
		if i%2 == 1 || i == len(photos)-1 {
			doc.SetY(y + imgH + rowGap)
		}
	}
	doc.Ln(3)
}

func writeSignatures(doc *gofpdf.Fpdf, form entities.InspectionForm, registered map[string]string) {
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 8, "Firmas", "B", 1, "L", false, 0, "")
	doc.Ln(2)

	opts := gofpdf.ImageOptions{}
	y := doc.GetY()
	if _, ok := registered["firma-operador"]; ok {
		doc.ImageOptions("firma-operador", 15, y, 60, 0, false, opts, 0, "")
	}
	if _, ok := registered["firma-cliente"]; ok {
		doc.ImageOptions("firma-cliente", 110, y, 60, 0, false, opts, 0, "")
	}
	doc.SetY(y + 30)
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(95, 5, "Operador", "T", 0, "C", false, 0, "")
	doc.CellFormat(0, 5, "Cliente", "T", 1, "C", false, 0, "")
}

// decodeDataURL splits a data-URL image payload into the gofpdf image type
// ("JPG"/"PNG") and the raw bytes.
func decodeDataURL(dataURL string) (string, []byte, error) {
	head, payload, found := strings.Cut(dataURL, ",")
	if !found {
		return "", nil, ErrInvalidPhotoData
	}

	var imgType string
	switch {
	case strings.HasPrefix(head, "data:image/jpeg;base64"), strings.HasPrefix(head, "data:image/jpg;base64"):
		imgType = "JPG"
	case strings.HasPrefix(head, "data:image/png;base64"):
		imgType = "PNG"
	default:
		return "", nil, fmt.Errorf("%w: unsupported media type %q", ErrInvalidPhotoData, head)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidPhotoData, err)
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("%w: empty payload", ErrInvalidPhotoData)
	}
	return imgType, data, nil
}
