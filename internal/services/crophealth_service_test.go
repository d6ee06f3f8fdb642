package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kissan/internal/models/response_models"
	"kissan/pkg/utils"
)

// fakeAIClient scripts the model replies for service tests.
type fakeAIClient struct {
	chatReply  string
	chatErr    error
	imageReply string
	imageErr   error
	lastPrompt string
}

func (f *fakeAIClient) Chat(ctx context.Context, message string) (string, error) {
	f.lastPrompt = message
	return f.chatReply, f.chatErr
}

func (f *fakeAIClient) AnalyzeImage(ctx context.Context, mimeType string, image []byte) (string, error) {
	return f.imageReply, f.imageErr
}

func (f *fakeAIClient) Close() error { return nil }

func TestParseDiagnosis(t *testing.T) {
	t.Run("extracts object embedded in prose", func(t *testing.T) {
		reply := "Here is what I found:\n```json\n{\"plant\":\"Wheat\",\"status\":\"Diseased\",\"disease\":\"Yellow Rust\",\"severity\":\"Moderate\",\"confidence\":88,\"treatment\":\"Spray fungicide.\",\"prevention\":\"Resistant seed.\"}\n```\nHope this helps."

		diagnosis, err := ParseDiagnosis(reply)
		require.NoError(t, err)
		assert.Equal(t, "Wheat", diagnosis.Plant)
		assert.Equal(t, response_models.CropDiseased, diagnosis.Status)
		require.NotNil(t, diagnosis.Disease)
		assert.Equal(t, "Yellow Rust", *diagnosis.Disease)
		assert.Equal(t, 88, diagnosis.Confidence)
		assert.False(t, diagnosis.Simulated)
	})

	t.Run("reply without an object is a hard error", func(t *testing.T) {
		_, err := ParseDiagnosis("Sorry, I could not identify the plant.")
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrMalformedUpstream)
	})

	t.Run("confidence clamps to 0..100", func(t *testing.T) {
		diagnosis, err := ParseDiagnosis(`{"plant":"Rice","status":"Healthy","confidence":140}`)
		require.NoError(t, err)
		assert.Equal(t, 100, diagnosis.Confidence)
	})

	t.Run("missing status defaults to healthy", func(t *testing.T) {
		diagnosis, err := ParseDiagnosis(`{"plant":"Rice","confidence":70}`)
		require.NoError(t, err)
		assert.Equal(t, response_models.CropHealthy, diagnosis.Status)
		assert.Equal(t, response_models.SeverityNone, diagnosis.Severity)
	})
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("model reply flows through", func(t *testing.T) {
		client := &fakeAIClient{imageReply: `{"plant":"Tomato","status":"Pest Affected","disease":"Whitefly","severity":"High","confidence":77,"treatment":"t","prevention":"p"}`}
		svc := NewCropHealthService(client)

		diagnosis, err := svc.Analyze(ctx, "image/png", []byte{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, "Tomato", diagnosis.Plant)
		assert.False(t, diagnosis.Simulated)
	})

	t.Run("unreachable model yields simulated fallback", func(t *testing.T) {
		client := &fakeAIClient{imageErr: errors.New("dial tcp: timeout")}
		svc := NewCropHealthService(client)

		first, err := svc.Analyze(ctx, "image/jpeg", []byte{1})
		require.NoError(t, err)
		assert.True(t, first.Simulated)
		assert.Equal(t, "Wheat", first.Plant)
		assert.Equal(t, response_models.CropHealthy, first.Status)

		second, err := svc.Analyze(ctx, "image/jpeg", []byte{1})
		require.NoError(t, err)
		assert.True(t, second.Simulated)
		require.NotNil(t, second.Disease)
		assert.Equal(t, "Yellow Rust", *second.Disease)

		third, err := svc.Analyze(ctx, "image/jpeg", []byte{1})
		require.NoError(t, err)
		assert.Equal(t, "Cotton", third.Plant)

		fourth, err := svc.Analyze(ctx, "image/jpeg", []byte{1})
		require.NoError(t, err)
		assert.Equal(t, "Wheat", fourth.Plant)
	})

	t.Run("unparseable reply stays an error", func(t *testing.T) {
		client := &fakeAIClient{imageReply: "I cannot tell from this photo."}
		svc := NewCropHealthService(client)

		_, err := svc.Analyze(ctx, "image/jpeg", []byte{1})
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrMalformedUpstream)
	})
}

func TestDiagnosisFromLabel(t *testing.T) {
	t.Run("healthy label", func(t *testing.T) {
		d := DiagnosisFromLabel("Wheat Healthy", 95)
		assert.Equal(t, response_models.CropHealthy, d.Status)
		assert.Nil(t, d.Disease)
		assert.Equal(t, 95, d.Confidence)
	})

	t.Run("rust label", func(t *testing.T) {
		d := DiagnosisFromLabel("Wheat Yellow Rust", 80)
		assert.Equal(t, response_models.CropDiseased, d.Status)
		require.NotNil(t, d.Disease)
		assert.Equal(t, "Yellow Rust", *d.Disease)
	})

	t.Run("unknown label buckets as generic disease", func(t *testing.T) {
		d := DiagnosisFromLabel("Rice Blast", 120)
		assert.Equal(t, response_models.CropDiseased, d.Status)
		require.NotNil(t, d.Disease)
		assert.Equal(t, "Unidentified disease", *d.Disease)
		assert.Equal(t, 100, d.Confidence)
	})
}
