package gen

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Liveness probe
	// (GET /healthz)
	GetHealth(w http.ResponseWriter, r *http.Request)
	// Readiness probe
	// (GET /readyz)
	GetReady(w http.ResponseWriter, r *http.Request)
	// Create an article and file it under the section for its tags
	// (POST /api/articles)
	CreateArticle(w http.ResponseWriter, r *http.Request)
	// Delete an article
	// (DELETE /api/articles/{id})
	DeleteArticle(w http.ResponseWriter, r *http.Request, id openapi_types.UUID)
	// Get an article
	// (GET /api/articles/{id})
	GetArticle(w http.ResponseWriter, r *http.Request, id openapi_types.UUID)
	// Replace an article and re-resolve its section
	// (PUT /api/articles/{id})
	UpdateArticle(w http.ResponseWriter, r *http.Request, id openapi_types.UUID)
	// List sections by article count
	// (GET /api/sections)
	ListSections(w http.ResponseWriter, r *http.Request)
	// Get a section
	// (GET /api/sections/{id})
	GetSection(w http.ResponseWriter, r *http.Request, id openapi_types.UUID)
	// List the articles of a section, most recent first
	// (GET /api/sections/{id}/articles)
	ListSectionArticles(w http.ResponseWriter, r *http.Request, id openapi_types.UUID)
	// List tags by prefix
	// (GET /api/tags)
	ListTags(w http.ResponseWriter, r *http.Request, params ListTagsParams)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type MiddlewareFunc func(http.Handler) http.Handler

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, fn http.HandlerFunc) {
	handler := http.Handler(fn)
	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}
	handler.ServeHTTP(w, r)
}

// bindID binds the {id} path parameter.
func (siw *ServerInterfaceWrapper) bindID(w http.ResponseWriter, r *http.Request) (openapi_types.UUID, bool) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return id, false
	}
	return id, true
}

// GetHealth operation middleware
func (siw *ServerInterfaceWrapper) GetHealth(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetHealth(w, r)
	})
}

// GetReady operation middleware
func (siw *ServerInterfaceWrapper) GetReady(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetReady(w, r)
	})
}

// CreateArticle operation middleware
func (siw *ServerInterfaceWrapper) CreateArticle(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateArticle(w, r)
	})
}

// DeleteArticle operation middleware
func (siw *ServerInterfaceWrapper) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeleteArticle(w, r, id)
	})
}

// GetArticle operation middleware
func (siw *ServerInterfaceWrapper) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetArticle(w, r, id)
	})
}

// UpdateArticle operation middleware
func (siw *ServerInterfaceWrapper) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateArticle(w, r, id)
	})
}

// ListSections operation middleware
func (siw *ServerInterfaceWrapper) ListSections(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListSections(w, r)
	})
}

// GetSection operation middleware
func (siw *ServerInterfaceWrapper) GetSection(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetSection(w, r, id)
	})
}

// ListSectionArticles operation middleware
func (siw *ServerInterfaceWrapper) ListSectionArticles(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListSectionArticles(w, r, id)
	})
}

// ListTags operation middleware
func (siw *ServerInterfaceWrapper) ListTags(w http.ResponseWriter, r *http.Request) {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListTagsParams

	// ------------- Optional query parameter "q" -------------

	err = runtime.BindQueryParameter("form", true, false, "q", r.URL.Query(), &params.Q)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "q", Err: err})
		return
	}

	// ------------- Optional query parameter "page" -------------

	err = runtime.BindQueryParameter("form", true, false, "page", r.URL.Query(), &params.Page)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "page", Err: err})
		return
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListTags(w, r, params)
	})
}

// InvalidParamFormatError is reported when a path or query parameter cannot
// be bound to its declared type.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseRouter: r,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/healthz", wrapper.GetHealth)
		r.Get(options.BaseURL+"/readyz", wrapper.GetReady)
		r.Post(options.BaseURL+"/api/articles", wrapper.CreateArticle)
		r.Delete(options.BaseURL+"/api/articles/{id}", wrapper.DeleteArticle)
		r.Get(options.BaseURL+"/api/articles/{id}", wrapper.GetArticle)
		r.Put(options.BaseURL+"/api/articles/{id}", wrapper.UpdateArticle)
		r.Get(options.BaseURL+"/api/sections", wrapper.ListSections)
		r.Get(options.BaseURL+"/api/sections/{id}", wrapper.GetSection)
		r.Get(options.BaseURL+"/api/sections/{id}/articles", wrapper.ListSectionArticles)
		r.Get(options.BaseURL+"/api/tags", wrapper.ListTags)
	})

	return r
}
