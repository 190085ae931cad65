package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"filmlog/internal/auth"
	"filmlog/internal/catalog"
	"filmlog/internal/domain"
	"filmlog/internal/service"
	"filmlog/internal/storage"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users       service.UserService
	watchlist   service.WatchlistService
	catalog     *catalog.Client
	storage     storage.Service
	storageOpts storage.UploadOptions
	tokens      *auth.TokenIssuer
	jwtSecret   string
	logger      *logrus.Logger
}

func NewHandler(
	users service.UserService,
	watchlist service.WatchlistService,
	catalogClient *catalog.Client,
	store storage.Service,
	storageOpts storage.UploadOptions,
	tokens *auth.TokenIssuer,
	jwtSecret string,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		users:       users,
		watchlist:   watchlist,
		catalog:     catalogClient,
		storage:     store,
		storageOpts: storageOpts,
		tokens:      tokens,
		jwtSecret:   jwtSecret,
		logger:      logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.POST("/register", h.register)
		api.POST("/login", h.login)
		api.GET("/movies/search", h.searchMovies)
		api.GET("/movies/trending", h.trendingMovies)
		api.GET("/movies/details/:id", h.movieDetails)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		protected := api.Group("", requireAuth(h.jwtSecret, h.users, h.logger))
		{
			protected.GET("/me", h.me)
			protected.POST("/movies/save", h.saveMovie)
			protected.GET("/mymovies", h.myMovies)
			protected.GET("/mymovies/export", h.exportMovies)
			protected.DELETE("/movies/:id", h.deleteMovie)
		}
	}
}

type registerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type saveMovieRequest struct {
	MovieID int64  `json:"movie_id"`
	Title   string `json:"title"`
	Year    string `json:"year"`
	Poster  string `json:"poster"`
}

type UserResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	CreatedAt   string `json:"created_at"`
}

type SavedMovieResponse struct {
	ID        int64  `json:"id"`
	MovieID   int64  `json:"movie_id"`
	Title     string `json:"title"`
	Year      string `json:"year"`
	Poster    string `json:"poster"`
	CreatedAt string `json:"created_at"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	user, err := h.users.Register(c.Request.Context(), service.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.registerError(c, err)
		return
	}

	token, err := h.tokens.IssueRegistration(user.ID)
	if err != nil {
		h.internalError(c, "issue registration token", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  userToResponse(user),
		"token": token,
	})
}

func (h *Handler) registerError(c *gin.Context, err error) {
	if verr, ok := service.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": verr.Error(),
			"details": verr.Violations,
		})
		return
	}
	if errors.Is(err, service.ErrUsernameTaken) || errors.Is(err, service.ErrEmailTaken) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	h.internalError(c, "register user", err)
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if verr, ok := service.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": verr.Error()})
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
			return
		}
		h.internalError(c, "authenticate user", err)
		return
	}

	token, err := h.tokens.IssueLogin(user.ID)
	if err != nil {
		h.internalError(c, "issue login token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userToResponse(user),
		"token": token,
	})
}

func (h *Handler) me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userToResponse(user)})
}

func (h *Handler) searchMovies(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "query parameter is required"})
		return
	}

	movies, err := h.catalog.Search(c.Request.Context(), query)
	if err != nil {
		h.upstreamError(c, "search movies", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": movies})
}

func (h *Handler) trendingMovies(c *gin.Context) {
	movies, err := h.catalog.Trending(c.Request.Context())
	if err != nil {
		h.upstreamError(c, "trending movies", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": movies})
}

func (h *Handler) movieDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid movie id"})
		return
	}

	movie, err := h.catalog.Details(c.Request.Context(), id)
	if err != nil {
		h.upstreamError(c, "movie details", err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *Handler) saveMovie(c *gin.Context) {
	user := currentUser(c)
	var req saveMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	movie, err := h.watchlist.Save(c.Request.Context(), user.ID, service.SaveInput{
		MovieID: req.MovieID,
		Title:   req.Title,
		Year:    req.Year,
		Poster:  req.Poster,
	})
	if err != nil {
		if verr, ok := service.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": verr.Error(),
				"details": verr.Violations,
			})
			return
		}
		h.internalError(c, "save movie", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"movie": savedMovieToResponse(*movie)})
}

func (h *Handler) myMovies(c *gin.Context) {
	user := currentUser(c)
	movies, err := h.watchlist.List(c.Request.Context(), user.ID)
	if err != nil {
		h.internalError(c, "list saved movies", err)
		return
	}

	resp := make([]SavedMovieResponse, len(movies))
	for i := range movies {
		resp[i] = savedMovieToResponse(movies[i])
	}
	c.JSON(http.StatusOK, gin.H{"movies": resp})
}

func (h *Handler) deleteMovie(c *gin.Context) {
	user := currentUser(c)
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || movieID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid movie id"})
		return
	}

	if err := h.watchlist.Delete(c.Request.Context(), user.ID, movieID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "movie not found"})
			return
		}
		h.internalError(c, "delete saved movie", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "movie removed"})
}

func (h *Handler) exportMovies(c *gin.Context) {
	if h.storage == nil || h.storageOpts.Bucket == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "storage service not configured"})
		return
	}

	user := currentUser(c)
	movies, err := h.watchlist.List(c.Request.Context(), user.ID)
	if err != nil {
		h.internalError(c, "list saved movies", err)
		return
	}

	resp := make([]SavedMovieResponse, len(movies))
	for i := range movies {
		resp[i] = savedMovieToResponse(movies[i])
	}

	snapshot, err := json.Marshal(gin.H{
		"user":        userToResponse(user),
		"movies":      resp,
		"exported_at": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		h.internalError(c, "marshal watchlist snapshot", err)
		return
	}

	key := fmt.Sprintf("user-%d/watchlist-%s.json", user.ID, uuid.NewString())
	location, err := h.storage.UploadSnapshot(c.Request.Context(), h.storageOpts, key, snapshot)
	if err != nil {
		h.internalError(c, "upload watchlist snapshot", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"location": location})
}

func (h *Handler) internalError(c *gin.Context, op string, err error) {
	if h.logger != nil {
		h.logger.Errorf("%s: %v", op, err)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}

func (h *Handler) upstreamError(c *gin.Context, op string, err error) {
	if h.logger != nil {
		h.logger.Errorf("%s: %v", op, err)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "movie catalog unavailable"})
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}
}

func savedMovieToResponse(movie domain.SavedMovie) SavedMovieResponse {
	return SavedMovieResponse{
		ID:        movie.ID,
		MovieID:   movie.MovieID,
		Title:     movie.Title,
		Year:      movie.Year,
		Poster:    movie.Poster,
		CreatedAt: movie.CreatedAt.Format(time.RFC3339),
	}
}
