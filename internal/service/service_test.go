package service

import (
	"testing"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/remote"
	"github.com/19smabtahinoor/Vocab-FlashCard/internal/remote/supabase"
	mock_service "github.com/19smabtahinoor/Vocab-FlashCard/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitServices(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var backend remote.Service = supabase.NewClient("http://localhost", "anon", nil)
	services := InitServices(backend, SessionOptions{}, zap.NewNop())
	assert.NotNil(t, services.SessionS)
	assert.NotNil(t, services.CardS)

	var mocked remote.Service = mock_service.NewMockRemoteI(ctrl)
	assert.NotNil(t, InitServices(mocked, SessionOptions{}, zap.NewNop()))
}
