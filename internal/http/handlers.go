package httpx

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Sayog-Shendre/bloger-page/internal/app"
	"github.com/Sayog-Shendre/bloger-page/internal/auth"
	"github.com/Sayog-Shendre/bloger-page/internal/db"
	"github.com/Sayog-Shendre/bloger-page/internal/models"
	"github.com/Sayog-Shendre/bloger-page/internal/util"
)

const (
	defaultPage  = 1
	defaultLimit = 5
)

type Server struct {
	Store *db.Store
	Cfg   app.Config
	Mux   *http.ServeMux
}

func NewServer(store *db.Store, cfg app.Config) *Server {
	s := &Server{Store: store, Cfg: cfg, Mux: http.NewServeMux()}

	// public
	s.Mux.Handle("GET /posts", http.HandlerFunc(s.handlePublicList))
	s.Mux.Handle("GET /posts/{id}", http.HandlerFunc(s.handlePublicGet))

	// admin (token required)
	s.Mux.Handle("GET /admin/posts", s.withAuth(s.requireAuth(http.HandlerFunc(s.handleAdminList))))
	s.Mux.Handle("POST /admin/posts", s.withAuth(s.requireAuth(http.HandlerFunc(s.handleAdminCreate))))
	s.Mux.Handle("PUT /admin/posts/{id}", s.withAuth(s.requireAuth(http.HandlerFunc(s.handleAdminUpdate))))
	s.Mux.Handle("DELETE /admin/posts/{id}", s.withAuth(s.requireAuth(http.HandlerFunc(s.handleAdminDelete))))

	// auth
	s.Mux.Handle("POST /auth/login", http.HandlerFunc(s.handleLogin))
	s.Mux.Handle("POST /auth/logout", s.withAuth(s.requireAuth(http.HandlerFunc(s.handleLogout))))
	s.Mux.Handle("GET /auth/verify", s.withAuth(s.requireAuth(http.HandlerFunc(s.handleVerify))))

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.Mux.ServeHTTP(w, r) }

// ------------------------------------------------------------------
// Public API
// ------------------------------------------------------------------

type listResponse struct {
	Success     bool          `json:"success"`
	Posts       []models.Post `json:"posts"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
	TotalPosts  int           `json:"totalPosts"`
}

func (s *Server) handlePublicList(w http.ResponseWriter, r *http.Request) {
	page := positiveOr(r.URL.Query().Get("page"), defaultPage)
	limit := positiveOr(r.URL.Query().Get("limit"), defaultLimit)
	offset := (page - 1) * limit

	total, err := s.Store.Count(r.Context())
	if err != nil {
		log.Printf("http.handlePublicList: count: %v", err)
		util.WriteError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	posts, err := s.Store.ListPage(r.Context(), limit, offset)
	if err != nil {
		log.Printf("http.handlePublicList: list: %v", err)
		util.WriteError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	util.WriteJSON(w, http.StatusOK, listResponse{
		Success:     true,
		Posts:       posts,
		CurrentPage: page,
		TotalPages:  (total + limit - 1) / limit,
		TotalPosts:  total,
	})
}

func (s *Server) handlePublicGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	post, err := s.Store.GetByID(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		util.WriteError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		log.Printf("http.handlePublicGet: id=%d: %v", id, err)
		util.WriteError(w, http.StatusInternalServerError, "Failed to fetch post")
		return
	}

	if r.URL.Query().Get("render") == "html" {
		html, err := util.RenderMarkdown(post.Content)
		if err != nil {
			log.Printf("http.handlePublicGet: render id=%d: %v", id, err)
			util.WriteError(w, http.StatusInternalServerError, "Failed to render post")
			return
		}
		post.ContentHTML = html
	}

	util.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "post": post})
}

// ------------------------------------------------------------------
// Admin API
// ------------------------------------------------------------------

type postBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

// decodePost reads and trims the request body. ok=false means the
// validation error was already written.
func decodePost(w http.ResponseWriter, r *http.Request) (postBody, bool) {
	var b postBody
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		util.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return b, false
	}
	b.Title = strings.TrimSpace(b.Title)
	b.Content = strings.TrimSpace(b.Content)
	b.Image = strings.TrimSpace(b.Image)
	if b.Title == "" || b.Content == "" {
		util.WriteError(w, http.StatusBadRequest, "Title and content are required")
		return b, false
	}
	return b, true
}

func (s *Server) handleAdminList(w http.ResponseWriter, r *http.Request) {
	posts, err := s.Store.ListAll(r.Context())
	if err != nil {
		log.Printf("http.handleAdminList: %v", err)
		util.WriteError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	util.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "posts": posts})
}

func (s *Server) handleAdminCreate(w http.ResponseWriter, r *http.Request) {
	b, ok := decodePost(w, r)
	if !ok {
		return
	}

	id, err := s.Store.Insert(r.Context(), b.Title, b.Content, b.Image)
	if err != nil {
		log.Printf("http.handleAdminCreate: %v", err)
		util.WriteError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	util.WriteJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Post created successfully",
		"postId":  id,
	})
}

func (s *Server) handleAdminUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	b, ok := decodePost(w, r)
	if !ok {
		return
	}

	switch err := s.Store.Update(r.Context(), id, b.Title, b.Content, b.Image); {
	case errors.Is(err, db.ErrNotFound):
		util.WriteError(w, http.StatusNotFound, "Post not found")
	case err != nil:
		log.Printf("http.handleAdminUpdate: id=%d: %v", id, err)
		util.WriteError(w, http.StatusInternalServerError, "Failed to update post")
	default:
		util.WriteJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Post updated successfully",
		})
	}
}

func (s *Server) handleAdminDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	switch err := s.Store.Delete(r.Context(), id); {
	case errors.Is(err, db.ErrNotFound):
		util.WriteError(w, http.StatusNotFound, "Post not found")
	case err != nil:
		log.Printf("http.handleAdminDelete: id=%d: %v", id, err)
		util.WriteError(w, http.StatusInternalServerError, "Failed to delete post")
	default:
		util.WriteJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Post deleted successfully",
		})
	}
}

// ------------------------------------------------------------------
// Auth API
// ------------------------------------------------------------------

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		util.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !auth.CheckCredentials(s.Cfg.AdminEmail, s.Cfg.AdminPassHash, body.Email, body.Password) {
		util.WriteError(w, http.StatusUnauthorized, auth.ErrInvalidLogin.Error())
		return
	}

	token, err := auth.IssueToken(s.Cfg.TokenSecret, s.Cfg.AdminEmail, s.Cfg.TokenLifetime)
	if err != nil {
		log.Printf("http.handleLogin: issue token: %v", err)
		util.WriteError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	log.Printf("login OK email=%s", s.Cfg.AdminEmail)
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(s.Cfg.TokenLifetime),
	})
	util.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	util.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Logged out"})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	email, _ := auth.EmailFrom(r.Context())
	util.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "email": email})
}

// positiveOr parses a positive integer, falling back to def when the
// value is missing, unparseable, or < 1.
func positiveOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
