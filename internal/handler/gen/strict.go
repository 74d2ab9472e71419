package gen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	strictnethttp "github.com/oapi-codegen/runtime/strictmiddleware/nethttp"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// ---- GetHealth ----

type GetHealthRequestObject struct{}

type GetHealthResponseObject interface {
	VisitGetHealthResponse(w http.ResponseWriter) error
}

type GetHealth200JSONResponse HealthResponse

func (response GetHealth200JSONResponse) VisitGetHealthResponse(w http.ResponseWriter) error {
	return writeJSON(w, 200, response)
}

// ---- GetReady ----

type GetReadyRequestObject struct{}

type GetReadyResponseObject interface {
	VisitGetReadyResponse(w http.ResponseWriter) error
}

type GetReady200JSONResponse HealthResponse

func (response GetReady200JSONResponse) VisitGetReadyResponse(w http.ResponseWriter) error {
	return writeJSON(w, 200, response)
}

type GetReady503JSONResponse ErrorResponse

func (response GetReady503JSONResponse) VisitGetReadyResponse(w http.ResponseWriter) error {
	return writeJSON(w, 503, response)
}

// ---- CreateArticle ----

type CreateArticleRequestObject struct {
	Body *CreateArticleJSONRequestBody
}

type CreateArticleResponseObject interface {
	VisitCreateArticleResponse(w http.ResponseWriter) error
}

type CreateArticle201JSONResponse Article

func (response CreateArticle201JSONResponse) VisitCreateArticleResponse(w http.ResponseWriter) error {
	return writeJSON(w, 201, response)
}

type CreateArticle400JSONResponse ErrorResponse

func (response CreateArticle400JSONResponse) VisitCreateArticleResponse(w http.ResponseWriter) error {
	return writeJSON(w, 400, response)
}

// ---- DeleteArticle ----

type DeleteArticleRequestObject struct {
	Id openapi_types.UUID `json:"id"`
}

type DeleteArticleResponseObject interface {
	VisitDeleteArticleResponse(w http.ResponseWriter) error
}

type DeleteArticle204Response struct{}

func (response DeleteArticle204Response) VisitDeleteArticleResponse(w http.ResponseWriter) error {
	w.WriteHeader(204)
	return nil
}

type DeleteArticle404JSONResponse ErrorResponse

func (response DeleteArticle404JSONResponse) VisitDeleteArticleResponse(w http.ResponseWriter) error {
	return writeJSON(w, 404, response)
}

// ---- GetArticle ----

type GetArticleRequestObject struct {
	Id openapi_types.UUID `json:"id"`
}

type GetArticleResponseObject interface {
	VisitGetArticleResponse(w http.ResponseWriter) error
}

type GetArticle200JSONResponse Article

func (response GetArticle200JSONResponse) VisitGetArticleResponse(w http.ResponseWriter) error {
	return writeJSON(w, 200, response)
}

type GetArticle404JSONResponse ErrorResponse

func (response GetArticle404JSONResponse) VisitGetArticleResponse(w http.ResponseWriter) error {
	return writeJSON(w, 404, response)
}

// ---- UpdateArticle ----

type UpdateArticleRequestObject struct {
	Id   openapi_types.UUID `json:"id"`
	Body *UpdateArticleJSONRequestBody
}

type UpdateArticleResponseObject interface {
	VisitUpdateArticleResponse(w http.ResponseWriter) error
}

type UpdateArticle200JSONResponse Article

func (response UpdateArticle200JSONResponse) VisitUpdateArticleResponse(w http.ResponseWriter) error {
	return writeJSON(w, 200, response)
}

type UpdateArticle400JSONResponse ErrorResponse

func (response UpdateArticle400JSONResponse) VisitUpdateArticleResponse(w http.ResponseWriter) error {
	return writeJSON(w, 400, response)
}

type UpdateArticle404JSONResponse ErrorResponse

func (response UpdateArticle404JSONResponse) VisitUpdateArticleResponse(w http.ResponseWriter) error {
	return writeJSON(w, 404, response)
}

// ---- ListSections ----

type ListSectionsRequestObject struct{}

type ListSectionsResponseObject interface {
	VisitListSectionsResponse(w http.ResponseWriter) error
}

type ListSections200JSONResponse SectionList

func (response ListSections200JSONResponse) VisitListSectionsResponse(w http.ResponseWriter) error {
	return writeJSON(w, 200, response)
}

// ---- GetSection ----

type GetSectionRequestObject struct {
	Id openapi_types.UUID `json:"id"`
}

type GetSectionResponseObject interface {
	VisitGetSectionResponse(w http.ResponseWriter) error
}

type GetSection200JSONResponse Section

func (response GetSection200JSONResponse) VisitGetSectionResponse(w http.ResponseWriter) error {
	return writeJSON(w, 200, response)
}

type GetSection404JSONResponse ErrorResponse

func (response GetSection404JSONResponse) VisitGetSectionResponse(w http.ResponseWriter) error {
	return writeJSON(w, 404, response)
}

// ---- ListSectionArticles ----

type ListSectionArticlesRequestObject struct {
	Id openapi_types.UUID `json:"id"`
}

type ListSectionArticlesResponseObject interface {
	VisitListSectionArticlesResponse(w http.ResponseWriter) error
}

type ListSectionArticles200JSONResponse ArticleList

func (response ListSectionArticles200JSONResponse) VisitListSectionArticlesResponse(w http.ResponseWriter) error {
	return writeJSON(w, 200, response)
}

type ListSectionArticles404JSONResponse ErrorResponse

func (response ListSectionArticles404JSONResponse) VisitListSectionArticlesResponse(w http.ResponseWriter) error {
	return writeJSON(w, 404, response)
}

// ---- ListTags ----

type ListTagsRequestObject struct {
	Params ListTagsParams
}

type ListTagsResponseObject interface {
	VisitListTagsResponse(w http.ResponseWriter) error
}

type ListTags200JSONResponse TagList

func (response ListTags200JSONResponse) VisitListTagsResponse(w http.ResponseWriter) error {
	return writeJSON(w, 200, response)
}

// StrictServerInterface represents all server handlers.
type StrictServerInterface interface {
	GetHealth(ctx context.Context, request GetHealthRequestObject) (GetHealthResponseObject, error)
	GetReady(ctx context.Context, request GetReadyRequestObject) (GetReadyResponseObject, error)
	CreateArticle(ctx context.Context, request CreateArticleRequestObject) (CreateArticleResponseObject, error)
	DeleteArticle(ctx context.Context, request DeleteArticleRequestObject) (DeleteArticleResponseObject, error)
	GetArticle(ctx context.Context, request GetArticleRequestObject) (GetArticleResponseObject, error)
	UpdateArticle(ctx context.Context, request UpdateArticleRequestObject) (UpdateArticleResponseObject, error)
	ListSections(ctx context.Context, request ListSectionsRequestObject) (ListSectionsResponseObject, error)
	GetSection(ctx context.Context, request GetSectionRequestObject) (GetSectionResponseObject, error)
	ListSectionArticles(ctx context.Context, request ListSectionArticlesRequestObject) (ListSectionArticlesResponseObject, error)
	ListTags(ctx context.Context, request ListTagsRequestObject) (ListTagsResponseObject, error)
}

type StrictHandlerFunc = strictnethttp.StrictHTTPHandlerFunc
type StrictMiddlewareFunc = strictnethttp.StrictHTTPMiddlewareFunc

type StrictHTTPServerOptions struct {
	RequestErrorHandlerFunc  func(w http.ResponseWriter, r *http.Request, err error)
	ResponseErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

func NewStrictHandler(ssi StrictServerInterface, middlewares []StrictMiddlewareFunc) ServerInterface {
	return &strictHandler{ssi: ssi, middlewares: middlewares, options: StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		},
	}}
}

func NewStrictHandlerWithOptions(ssi StrictServerInterface, middlewares []StrictMiddlewareFunc, options StrictHTTPServerOptions) ServerInterface {
	return &strictHandler{ssi: ssi, middlewares: middlewares, options: options}
}

type strictHandler struct {
	ssi         StrictServerInterface
	middlewares []StrictMiddlewareFunc
	options     StrictHTTPServerOptions
}

// run applies the strict middlewares to handler and writes its response.
// visit reports false when response is not of the operation's response type.
func (sh *strictHandler) run(w http.ResponseWriter, r *http.Request, operationID string, request any,
	handler StrictHandlerFunc, visit func(response any) (bool, error)) {
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, operationID)
	}

	response, err := handler(r.Context(), w, r, request)
	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
		return
	}
	if response == nil {
		return
	}
	ok, err := visit(response)
	if !ok {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
		return
	}
	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	}
}

// decodeBody decodes the JSON request body into dst.
func (sh *strictHandler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, fmt.Errorf("can't decode JSON body: %w", err))
		return false
	}
	return true
}

// GetHealth operation middleware
func (sh *strictHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	var request GetHealthRequestObject

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetHealth(ctx, request.(GetHealthRequestObject))
	}
	sh.run(w, r, "GetHealth", request, handler, func(response any) (bool, error) {
		v, ok := response.(GetHealthResponseObject)
		if !ok {
			return false, nil
		}
		return true, v.VisitGetHealthResponse(w)
	})
}

// GetReady operation middleware
func (sh *strictHandler) GetReady(w http.ResponseWriter, r *http.Request) {
	var request GetReadyRequestObject

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetReady(ctx, request.(GetReadyRequestObject))
	}
	sh.run(w, r, "GetReady", request, handler, func(response any) (bool, error) {
		v, ok := response.(GetReadyResponseObject)
		if !ok {
			return false, nil
		}
		return true, v.VisitGetReadyResponse(w)
	})
}

// CreateArticle operation middleware
func (sh *strictHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var request CreateArticleRequestObject

	var body CreateArticleJSONRequestBody
	if !sh.decodeBody(w, r, &body) {
		return
	}
	request.Body = &body

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.CreateArticle(ctx, request.(CreateArticleRequestObject))
	}
	sh.run(w, r, "CreateArticle", request, handler, func(response any) (bool, error) {
		v, ok := response.(CreateArticleResponseObject)
		if !ok {
			return false, nil
		}
		return true, v.VisitCreateArticleResponse(w)
	})
}

// DeleteArticle operation middleware
func (sh *strictHandler) DeleteArticle(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	request := DeleteArticleRequestObject{Id: id}

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.DeleteArticle(ctx, request.(DeleteArticleRequestObject))
	}
	sh.run(w, r, "DeleteArticle", request, handler, func(response any) (bool, error) {
		v, ok := response.(DeleteArticleResponseObject)
		if !ok {
			return false, nil
		}
		return true, v.VisitDeleteArticleResponse(w)
	})
}

// GetArticle operation middleware
func (sh *strictHandler) GetArticle(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	request := GetArticleRequestObject{Id: id}

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetArticle(ctx, request.(GetArticleRequestObject))
	}
	sh.run(w, r, "GetArticle", request, handler, func(response any) (bool, error) {
		v, ok := response.(GetArticleResponseObject)
		if !ok {
			return false, nil
		}
		return true, v.VisitGetArticleResponse(w)
	})
}

// UpdateArticle operation middleware
func (sh *strictHandler) UpdateArticle(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	request := UpdateArticleRequestObject{Id: id}

	var body UpdateArticleJSONRequestBody
	if !sh.decodeBody(w, r, &body) {
		return
	}
	request.Body = &body

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.UpdateArticle(ctx, request.(UpdateArticleRequestObject))
	}
	sh.run(w, r, "UpdateArticle", request, handler, func(response any) (bool, error) {
		v, ok := response.(UpdateArticleResponseObject)
		if !ok {
			return false, nil
		}
		return true, v.VisitUpdateArticleResponse(w)
	})
}

// ListSections operation middleware
func (sh *strictHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	var request ListSectionsRequestObject

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.ListSections(ctx, request.(ListSectionsRequestObject))
	}
	sh.run(w, r, "ListSections", request, handler, func(response any) (bool, error) {
		v, ok := response.(ListSectionsResponseObject)
		if !ok {
			return false, nil
		}
		return true, v.VisitListSectionsResponse(w)
	})
}

// GetSection operation middleware
func (sh *strictHandler) GetSection(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	request := GetSectionRequestObject{Id: id}

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetSection(ctx, request.(GetSectionRequestObject))
	}
	sh.run(w, r, "GetSection", request, handler, func(response any) (bool, error) {
		v, ok := response.(GetSectionResponseObject)
		if !ok {
			return false, nil
		}
		return true, v.VisitGetSectionResponse(w)
	})
}

// ListSectionArticles operation middleware
func (sh *strictHandler) ListSectionArticles(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	request := ListSectionArticlesRequestObject{Id: id}

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.ListSectionArticles(ctx, request.(ListSectionArticlesRequestObject))
	}
	sh.run(w, r, "ListSectionArticles", request, handler, func(response any) (bool, error) {
		v, ok := response.(ListSectionArticlesResponseObject)
		if !ok {
			return false, nil
		}
		return true, v.VisitListSectionArticlesResponse(w)
	})
}

// ListTags operation middleware
func (sh *strictHandler) ListTags(w http.ResponseWriter, r *http.Request, params ListTagsParams) {
	request := ListTagsRequestObject{Params: params}

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.ListTags(ctx, request.(ListTagsRequestObject))
	}
	sh.run(w, r, "ListTags", request, handler, func(response any) (bool, error) {
		v, ok := response.(ListTagsResponseObject)
		if !ok {
			return false, nil
		}
		return true, v.VisitListTagsResponse(w)
	})
}
