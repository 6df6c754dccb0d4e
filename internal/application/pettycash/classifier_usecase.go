package pettycash

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/samka/gestion-api/internal/application/dto"
	"github.com/samka/gestion-api/internal/application/ports"
	"github.com/samka/gestion-api/internal/domain"
	"github.com/samka/gestion-api/internal/domain/classifier"
	"github.com/samka/gestion-api/internal/domain/repository"
)

// ClassifierUseCase entrena, carga y consulta el clasificador de tipo de documento.
// El modelo vive en un classifier.Handle compartido; nadie consulta el disco al predecir.
type ClassifierUseCase struct {
	repo   repository.PettyCashRepository
	store  ports.ModelStore
	handle *classifier.Handle
	now    func() time.Time
	log    zerolog.Logger
}

// NewClassifierUseCase construye el caso de uso.
func NewClassifierUseCase(repo repository.PettyCashRepository, store ports.ModelStore, handle *classifier.Handle, log zerolog.Logger) *ClassifierUseCase {
	return &ClassifierUseCase{
		repo:   repo,
		store:  store,
		handle: handle,
		now:    time.Now,
		log:    log,
	}
}

// Train entrena con todos los gastos (descripción -> tipo de documento), guarda el modelo
// y lo deja vigente. Con menos de classifier.MinSamples gastos devuelve domain.ErrNotEnoughSamples.
func (uc *ClassifierUseCase) Train(ctx context.Context) (*dto.TrainClassifierResponse, error) {
	expenses, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	samples := make([]classifier.Sample, 0, len(expenses))
	for _, e := range expenses {
		samples = append(samples, classifier.Sample{Text: e.Description, Label: e.DocumentType})
	}
	model, err := classifier.Train(samples, uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.store.Save(ctx, model); err != nil {
		return nil, err
	}
	uc.handle.Set(model)
	uc.log.Info().Int("samples", model.Samples).Strs("classes", model.Classes).Msg("clasificador entrenado")

	return &dto.TrainClassifierResponse{
		Samples:   model.Samples,
		Classes:   model.Classes,
		TrainedAt: model.TrainedAt,
	}, nil
}

// LoadFromStore carga el modelo guardado, si existe. Devuelve false si no hay modelo.
func (uc *ClassifierUseCase) LoadFromStore(ctx context.Context) (bool, error) {
	model, err := uc.store.Load(ctx)
	if err != nil {
		return false, err
	}
	if model == nil {
		return false, nil
	}
	uc.handle.Set(model)
	return true, nil
}

// Suggest sugiere el tipo de documento para una descripción.
// Sin modelo entrenado devuelve una sugerencia vacía.
func (uc *ClassifierUseCase) Suggest(_ context.Context, in dto.SuggestDocumentTypeRequest) (*dto.SuggestDocumentTypeResponse, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !uc.handle.Ready() {
		return &dto.SuggestDocumentTypeResponse{}, nil
	}
	p, err := uc.handle.Predict(in.Description)
	if err != nil {
		return nil, err
	}
	return &dto.SuggestDocumentTypeResponse{DocumentType: p.Label, Probability: p.Probability}, nil
}
