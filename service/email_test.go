package service

import (
	"testing"

	"buget/config"

	"github.com/stretchr/testify/assert"
)

func TestSendDataExportDezactivat(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{Enabled: false})

	err := s.SendDataExport("ion@example.com", "ion", []byte("{}"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nu este activat")
}
