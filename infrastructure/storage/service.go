package storage

import (
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/storage/storageclient"
	"github.com/vfg2006/portfolio-admin-api/pkg/utils"
)

// Extensões de imagem aceitas pelo SaveImage
var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".svg":  {},
}

var ErrUnsupportedImageType = fmt.Errorf("tipo de imagem não suportado")

// SaveOptions controla o destino e a limpeza de um upload
type SaveOptions struct {
	Folder         string
	DeletePrevious string // caminho do objeto anterior a remover, quando informado
}

// Service é o contrato de persistência de arquivos usado pelos serviços de domínio
type Service interface {
	SaveImage(filename string, content io.Reader, opts SaveOptions) (string, error)
	SaveFile(filename string, content io.Reader, opts SaveOptions) (string, error)
	DeleteFile(objectPath string) error
	PublicURL(objectPath string) string
}

type storageService struct {
	client storageclient.Client
}

func NewService(client storageclient.Client) Service {
	return &storageService{client: client}
}

// SaveImage envia uma imagem para o storage e retorna o caminho gerado.
// Quando DeletePrevious é informado, a imagem anterior é removida em modo
// melhor-esforço: falha de remoção é logada e não interrompe o upload.
func (s *storageService) SaveImage(filename string, content io.Reader, opts SaveOptions) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := imageExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImageType, ext)
	}

	return s.save(filename, content, opts)
}

// SaveFile envia um arquivo genérico (currículo, anexos) para o storage
func (s *storageService) SaveFile(filename string, content io.Reader, opts SaveOptions) (string, error) {
	return s.save(filename, content, opts)
}

func (s *storageService) save(filename string, content io.Reader, opts SaveOptions) (string, error) {
	objectName, err := utils.GenerateObjectName()
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := fmt.Sprintf("%s/%s%s", strings.Trim(opts.Folder, "/"), objectName, ext)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := s.client.Upload(objectPath, contentType, content); err != nil {
		return "", err
	}

	if opts.DeletePrevious != "" {
		if err := s.client.Remove([]string{opts.DeletePrevious}); err != nil {
			logrus.WithError(err).WithField("object_path", opts.DeletePrevious).
				Warn("Erro ao remover arquivo anterior do storage")
		}
	}

	return objectPath, nil
}

// DeleteFile remove um objeto do storage
func (s *storageService) DeleteFile(objectPath string) error {
	if objectPath == "" {
		return nil
	}
	return s.client.Remove([]string{objectPath})
}

// PublicURL retorna a URL pública de leitura de um objeto
func (s *storageService) PublicURL(objectPath string) string {
	return s.client.PublicURL(objectPath)
}
