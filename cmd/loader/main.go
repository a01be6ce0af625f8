package main

import (
	"StarWarsBlog/internal/handlers"
	"StarWarsBlog/internal/model"
	"StarWarsBlog/internal/service"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Загрузчик каталога: читает сырые swapi-файлы people/planets, переводит
// именованные свойства в generic-слоты через слой проекции и отправляет
// батч на POST /api/items сервера.

// sourceRecord — одна запись сырого файла источника.
type sourceRecord struct {
	Result struct {
		ID          string         `json:"_id"`
		UID         string         `json:"uid"`
		Version     int64          `json:"__v"`
		Description string         `json:"description"`
		Properties  map[string]any `json:"properties"`
	} `json:"result"`
}

func main() {
	var (
		peopleFile  = flag.String("people", "", "путь к файлу people (swapi JSON)")
		planetsFile = flag.String("planets", "", "путь к файлу planets (swapi JSON)")
		serverURL   = flag.String("server", "http://localhost:3000", "адрес сервера")
	)
	flag.Parse()

	if *peopleFile == "" && *planetsFile == "" {
		fmt.Fprintln(os.Stderr, "nothing to load: pass -people and/or -planets")
		os.Exit(1)
	}

	var items []handlers.IngestItemDTO
	for _, src := range []struct {
		path     string
		typeItem model.ItemType
	}{
		{*peopleFile, model.TypePeople},
		{*planetsFile, model.TypePlanets},
	} {
		if src.path == "" {
			continue
		}
		batch, err := readSource(src.path, src.typeItem)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read %s: %v\n", src.path, err)
			os.Exit(1)
		}
		items = append(items, batch...)
	}

	resp, body, err := postJSON(*serverURL+"/api/items", handlers.IngestRequest{Items: items})
	if err != nil {
		fmt.Fprintf(os.Stderr, "post batch: %v\n", err)
		os.Exit(1)
	}
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "server rejected batch: %s: %s\n", resp.Status, string(body))
		os.Exit(1)
	}

	fmt.Printf("loaded %d items\n", len(items))
}

// readSource разбирает файл источника и переводит каждую запись
// в плоский вид батча.
func readSource(path string, typeItem model.ItemType) ([]handlers.IngestItemDTO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []sourceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	fields, err := service.FieldsForType(typeItem)
	if err != nil {
		return nil, err
	}
	known := map[string]bool{"created": true, "edited": true, "url": true}
	for _, f := range fields {
		known[f] = true
	}

	items := make([]handlers.IngestItemDTO, 0, len(records))
	for _, rec := range records {
		named := make(map[string]string, len(rec.Result.Properties))
		for k, v := range rec.Result.Properties {
			// поля источника сверх девяти слотов не переживают загрузку
			if known[k] {
				named[k] = fmt.Sprint(v)
			}
		}

		p, err := service.FlattenProperties(typeItem, named)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", rec.Result.ID, err)
		}

		items = append(items, handlers.IngestItemDTO{
			TypeItem:    string(typeItem),
			PropID:      rec.Result.ID,
			Description: rec.Result.Description,
			UID:         rec.Result.UID,
			Version:     rec.Result.Version,
			Properties: handlers.IngestPropertiesDTO{
				PropertieID: rec.Result.ID,
				Created:     p.Created,
				Edited:      p.Edited,
				Propertie1:  p.Propertie1,
				Propertie2:  p.Propertie2,
				Propertie3:  p.Propertie3,
				Propertie4:  p.Propertie4,
				Propertie5:  p.Propertie5,
				Propertie6:  p.Propertie6,
				Propertie7:  p.Propertie7,
				Propertie8:  p.Propertie8,
				Propertie9:  p.Propertie9,
				URL:         p.URL,
			},
		})
	}
	return items, nil
}

// postJSON отправляет JSON POST-запрос и возвращает ответ вместе с телом.
func postJSON(url string, payload any) (*http.Response, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, body, nil
}
