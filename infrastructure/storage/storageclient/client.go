package storageclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/portfolio-admin-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client é o contrato do serviço hospedado de armazenamento de objetos
type Client interface {
	Upload(objectPath string, contentType string, content io.Reader) error
	Remove(objectPaths []string) error
	PublicURL(objectPath string) string
}

type StorageClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente de armazenamento
func NewClient(cfg *config.Config) Client {
	return &StorageClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		config: cfg,
	}
}

// Upload envia o conteúdo para o bucket configurado no caminho informado.
// Objetos existentes no mesmo caminho são sobrescritos.
func (c *StorageClient) Upload(objectPath string, contentType string, content io.Reader) error {
	endpoint, err := c.objectEndpoint(objectPath)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, content)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição de upload")
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Storage.ServiceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição de upload")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("upload falhou com status: %s", resp.Status)
	}

	return nil
}

// Remove apaga os objetos informados do bucket configurado
func (c *StorageClient) Remove(objectPaths []string) error {
	if len(objectPaths) == 0 {
		return nil
	}

	endpoint, err := url.Parse(c.config.Storage.URL)
	if err != nil {
		return errors.Wrap(err, "erro ao analisar a URL base do storage")
	}
	endpoint.Path = path.Join(endpoint.Path, "object", c.config.Storage.Bucket)

	body, err := json.Marshal(map[string][]string{"prefixes": objectPaths})
	if err != nil {
		return errors.Wrap(err, "erro ao serializar os caminhos de remoção")
	}

	req, err := http.NewRequest(http.MethodDelete, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição de remoção")
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Storage.ServiceKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição de remoção")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("remoção falhou com status: %s", resp.Status)
	}

	return nil
}

// PublicURL monta a URL pública de leitura de um objeto
func (c *StorageClient) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/%s/%s", c.config.Storage.PublicBaseURL, c.config.Storage.Bucket, objectPath)
}

func (c *StorageClient) objectEndpoint(objectPath string) (string, error) {
	endpoint, err := url.Parse(c.config.Storage.URL)
	if err != nil {
		return "", errors.Wrap(err, "erro ao analisar a URL base do storage")
	}

	endpoint.Path = path.Join(endpoint.Path, "object", c.config.Storage.Bucket, objectPath)

	return endpoint.String(), nil
}
