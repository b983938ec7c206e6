package pdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
	"time"

	"tms_gruas/internal/domain/entities"
)

func jpegDataURL(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func testForm(t *testing.T) entities.InspectionForm {
	return entities.InspectionForm{
		EquipmentChecked:    []string{"cadenas", "eslingas", "extintor"},
		VehicleObservations: "rayon en puerta trasera",
		OperatorSignature:   entities.SignatureData(jpegDataURL(t, 120, 40)),
		PhotoSets: map[string][]entities.PhotoData{
			"frontal": {{Name: "frontal-1", DataURL: jpegDataURL(t, 80, 60)}},
			"lateral": {{Name: "lateral-1", DataURL: jpegDataURL(t, 80, 60)}},
		},
	}
}

func testService() (entities.Service, entities.Client) {
	return entities.Service{
			ID:          "svc-1",
			Folio:       1042,
			Origin:      "Av. Las Condes 1200",
			Destination: "Ruta 68 km 12",
			ServiceDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		}, entities.Client{
			Name: "Transportes Del Sur",
			RUT:  "76543210-5",
		}
}

type progressEvent struct {
	percent int
	stage   string
}

func TestGenerator_ReportsStagesInOrder(t *testing.T) {
	g := NewGenerator()
	svc, client := testService()

	var events []progressEvent
	out, err := g.Generate(context.Background(), svc, client, testForm(t), func(p int, stage string) {
		events = append(events, progressEvent{p, stage})
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(out) == 0 || !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected PDF output, got %d bytes", len(out))
	}

	wantStages := []string{StagePreparing, StagePhotos, StageRendering, StageCompleted}
	if len(events) != len(wantStages) {
		t.Fatalf("expected %d progress events, got %+v", len(wantStages), events)
	}
	lastPercent := -1
	for i, ev := range events {
		if ev.stage != wantStages[i] {
			t.Fatalf("event %d: expected stage %q, got %q", i, wantStages[i], ev.stage)
		}
		if ev.percent <= lastPercent {
			t.Fatalf("progress not monotonic: %+v", events)
		}
		lastPercent = ev.percent
	}
	if events[len(events)-1].percent != 100 {
		t.Fatalf("expected final percent 100, got %d", events[len(events)-1].percent)
	}
}

func TestGenerator_CorruptPhotoAbortsWithErrorStage(t *testing.T) {
	g := NewGenerator()
	svc, client := testService()
	form := testForm(t)
	form.PhotoSets["frontal"] = []entities.PhotoData{{Name: "bad", DataURL: "data:image/jpeg;base64,%%%"}}

	var lastStage string
	out, err := g.Generate(context.Background(), svc, client, form, func(_ int, stage string) {
		lastStage = stage
	})
	if !errors.Is(err, ErrInvalidPhotoData) {
		t.Fatalf("expected ErrInvalidPhotoData, got %v", err)
	}
	if out != nil {
		t.Fatalf("no partial PDF may be returned on failure")
	}
	if lastStage != StageError {
		t.Fatalf("expected error stage reported, got %q", lastStage)
	}
}

func TestGenerator_UnsupportedMediaTypeRejected(t *testing.T) {
	g := NewGenerator()
	svc, client := testService()
	form := testForm(t)
	form.OperatorSignature = "data:image/webp;base64,AAAA"

	_, err := g.Generate(context.Background(), svc, client, form, nil)
	if !errors.Is(err, ErrInvalidPhotoData) {
		t.Fatalf("expected ErrInvalidPhotoData, got %v", err)
	}
}

func TestGenerator_RejectsConcurrentDuplicateRun(t *testing.T) {
	g := NewGenerator()
	svc, client := testService()
	form := testForm(t)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		_, err := g.Generate(context.Background(), svc, client, form, func(p int, stage string) {
			if stage == StagePreparing {
				close(started)
				<-release
			}
		})
		done <- err
	}()

	<-started
	_, err := g.Generate(context.Background(), svc, client, form, nil)
	if !errors.Is(err, ErrGenerationInFlight) {
		t.Fatalf("expected ErrGenerationInFlight, got %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	// After the first run finishes the guard is released.
	if _, err := g.Generate(context.Background(), svc, client, form, nil); err != nil {
		t.Fatalf("expected guard released, got %v", err)
	}
}

func TestGenerator_DifferentServicesRunIndependently(t *testing.T) {
	g := NewGenerator()
	svcA, client := testService()
	svcB := svcA
	svcB.ID = "svc-2"
	form := testForm(t)

	if _, err := g.Generate(context.Background(), svcA, client, form, nil); err != nil {
		t.Fatalf("svcA: %v", err)
	}
	if _, err := g.Generate(context.Background(), svcB, client, form, nil); err != nil {
		t.Fatalf("svcB: %v", err)
	}
}
