package httpserver

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/Clark-Hu/movie-catalog/internal/catalog"
	"github.com/Clark-Hu/movie-catalog/internal/domain"
)

type collectionCreateRequest struct {
	Name string `json:"name"`
}

type collectionMemberRequest struct {
	Title string `json:"title"`
}

type collectionListResponse struct {
	Names []string `json:"names"`
}

type collectionResponse struct {
	Name  string          `json:"name"`
	Items []movieResponse `json:"items"`
	Count int             `json:"count"`
}

func (s *Server) handleListCollections(w http.ResponseWriter, r *http.Request) {
	var names []string
	s.read(func(c *catalog.Catalog) { names = c.Collections() })
	if names == nil {
		names = []string{}
	}
	s.respondJSON(w, http.StatusOK, collectionListResponse{Names: names})
}

func (s *Server) handleCreateCollection(w http.ResponseWriter, r *http.Request) {
	if !s.requireBearer(w, r) {
		return
	}

	var req collectionCreateRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		s.respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "name is required")
		return
	}

	err := s.mutate("create_collection", func(c *catalog.Catalog) error {
		return c.CreateCollection(req.Name)
	})
	if err != nil {
		s.respondCatalogError(w, err)
		return
	}
	w.Header().Set("Location", "/collections/"+url.PathEscape(req.Name))
	s.respondJSON(w, http.StatusCreated, collectionResponse{Name: req.Name, Items: []movieResponse{}})
}

// handleGetCollection answers 200 with an empty list for unknown names.
func (s *Server) handleGetCollection(w http.ResponseWriter, r *http.Request) {
	name, err := decodePathParam(r, "name")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	var members []domain.Movie
	s.read(func(c *catalog.Catalog) { members = c.Collection(name) })
	list := toMovieListResponse(members)
	s.respondJSON(w, http.StatusOK, collectionResponse{Name: name, Items: list.Items, Count: list.Count})
}

func (s *Server) handleAddToCollection(w http.ResponseWriter, r *http.Request) {
	if !s.requireBearer(w, r) {
		return
	}
	name, err := decodePathParam(r, "name")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	var req collectionMemberRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	var members []domain.Movie
	err = s.mutate("add_to_collection", func(c *catalog.Catalog) error {
		if err := c.AddToCollection(name, req.Title); err != nil {
			return err
		}
		members = c.Collection(name)
		return nil
	})
	if err != nil {
		s.respondCatalogError(w, err)
		return
	}
	list := toMovieListResponse(members)
	s.respondJSON(w, http.StatusCreated, collectionResponse{Name: name, Items: list.Items, Count: list.Count})
}

func (s *Server) handleRemoveFromCollection(w http.ResponseWriter, r *http.Request) {
	if !s.requireBearer(w, r) {
		return
	}
	name, err := decodePathParam(r, "name")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	title, err := decodePathParam(r, "title")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	err = s.mutate("remove_from_collection", func(c *catalog.Catalog) error {
		return c.RemoveFromCollection(name, title)
	})
	if err != nil {
		s.respondCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
