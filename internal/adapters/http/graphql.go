package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/samirrijal/geoframe/internal/core/domain"
)

// buildSchema creates the GraphQL schema wired to our services.
func buildSchema(deps *Dependencies) (graphql.Schema, error) {
	geoPointType := graphql.NewObject(graphql.ObjectConfig{
		Name: "GeoPoint",
		Fields: graphql.Fields{
			"longitude": &graphql.Field{Type: graphql.Float},
			"latitude":  &graphql.Field{Type: graphql.Float},
		},
	})

	flatPointType := graphql.NewObject(graphql.ObjectConfig{
		Name: "FlatPoint",
		Fields: graphql.Fields{
			"x": &graphql.Field{Type: graphql.Float},
			"y": &graphql.Field{Type: graphql.Float},
		},
	})

	relativePointType := graphql.NewObject(graphql.ObjectConfig{
		Name: "RelativePoint",
		Fields: graphql.Fields{
			"x": &graphql.Field{Type: graphql.Float},
			"y": &graphql.Field{Type: graphql.Float},
		},
	})

	flatCornersType := graphql.NewObject(graphql.ObjectConfig{
		Name: "FlatCorners",
		Fields: graphql.Fields{
			"lt": &graphql.Field{Type: flatPointType},
			"lb": &graphql.Field{Type: flatPointType},
			"rb": &graphql.Field{Type: flatPointType},
		},
	})

	geoCornersType := graphql.NewObject(graphql.ObjectConfig{
		Name: "GeoCorners",
		Fields: graphql.Fields{
			"lt": &graphql.Field{Type: geoPointType},
			"lb": &graphql.Field{Type: geoPointType},
			"rb": &graphql.Field{Type: geoPointType},
		},
	})

	frameType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Frame",
		Fields: graphql.Fields{
			"mode":              &graphql.Field{Type: graphql.String},
			"supports_rotation": &graphql.Field{Type: graphql.Boolean},
			"wgs":               &graphql.Field{Type: geoCornersType},
			"flat":              &graphql.Field{Type: flatCornersType},
			"rotated":           &graphql.Field{Type: flatCornersType},
			"sin":               &graphql.Field{Type: graphql.Float},
			"cos":               &graphql.Field{Type: graphql.Float},
			"delta":             &graphql.Field{Type: flatPointType},
		},
	})

	geoArgs := graphql.FieldConfigArgument{
		"longitude": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
		"latitude":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
	}
	flatArgs := graphql.FieldConfigArgument{
		"x": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
		"y": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"toFlat": &graphql.Field{
				Type:        flatPointType,
				Description: "Project a WGS84 point to the planar system",
				Args:        geoArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					flat, err := deps.Projection.ToFlat(geoArg(p))
					if err != nil {
						return nil, err
					}
					if err := projectedFlat(flat); err != nil {
						return nil, err
					}
					return flat, nil
				},
			},
			"toWgs": &graphql.Field{
				Type:        geoPointType,
				Description: "Project a planar point to WGS84",
				Args:        flatArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					wgs, err := deps.Projection.ToWGS(flatArg(p))
					if err != nil {
						return nil, err
					}
					if err := projectedGeo(wgs); err != nil {
						return nil, err
					}
					return wgs, nil
				},
			},
			"relativeByWgs": &graphql.Field{
				Type:        relativePointType,
				Description: "Position of a WGS84 point inside the bounding frame, in percent",
				Args:        geoArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					geo := geoArg(p)
					rel, err := deps.Mapper.RelativeByWgs(geo)
					if err == nil && !rel.Finite() {
						if err := unprojectable(deps, geo); err != nil {
							return nil, err
						}
					}
					return finiteRelative(rel, err)
				},
			},
			"relativeByFlat": &graphql.Field{
				Type:        relativePointType,
				Description: "Position of a planar point inside the bounding frame, in percent",
				Args:        flatArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return finiteRelative(deps.Mapper.RelativeByFlat(flatArg(p)))
				},
			},
			"frame": &graphql.Field{
				Type:        frameType,
				Description: "The active bounding frame",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					snap := deps.Mapper.Frame()
					if snap.Degenerate() {
						return nil, errDegenerateFrame
					}
					return snap, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}

var errDegenerateFrame = &domain.ArgumentError{Field: "borders", Reason: "bounding frame is degenerate"}

func geoArg(p graphql.ResolveParams) domain.GeoPoint {
	return domain.GeoPoint{
		Longitude: p.Args["longitude"].(float64),
		Latitude:  p.Args["latitude"].(float64),
	}
}

func flatArg(p graphql.ResolveParams) domain.FlatPoint {
	return domain.FlatPoint{
		X: p.Args["x"].(float64),
		Y: p.Args["y"].(float64),
	}
}

func finiteRelative(r domain.RelativePoint, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	if !r.Finite() {
		return nil, errDegenerateFrame
	}
	return r, nil
}

// GraphQLHandler serves the GraphQL endpoint.
func GraphQLHandler(deps *Dependencies) fiber.Handler {
	schema, err := buildSchema(deps)
	if err != nil {
		// This would be a programming error in the schema definition
		panic("graphql schema build: " + err.Error())
	}

	type gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req gqlRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.UserContext(),
		})

		return c.JSON(result)
	}
}
