package graphql

import "github.com/graphql-go/graphql"

// NewSchema wires the resolver into the full schema surface.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	tripIDArg := graphql.FieldConfigArgument{
		"tripId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"trip": &graphql.Field{
				Type: tripType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.trip,
			},
			"userTrips": &graphql.Field{
				Type:    graphql.NewList(tripType),
				Resolve: r.userTrips,
			},
			"collaboratorsInTrip": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.collaboratorsInTrip,
			},
			"searchTrip": &graphql.Field{
				Type: graphql.NewList(tripType),
				Args: graphql.FieldConfigArgument{
					"searchInput": &graphql.ArgumentConfig{Type: searchTripInputType},
				},
				Resolve: r.searchTrip("searchInput"),
			},
			"getTripsByDateRange": &graphql.Field{
				Type: graphql.NewList(tripType),
				Args: graphql.FieldConfigArgument{
					"dateRange": &graphql.ArgumentConfig{Type: searchTripInputType},
				},
				Resolve: r.searchTrip("dateRange"),
			},
			"PopularDestination": &graphql.Field{
				Type:    graphql.NewList(popularDestinationType),
				Resolve: r.popularDestination,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: authType,
				Args: graphql.FieldConfigArgument{
					"signupInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(signupInputType)},
				},
				Resolve: r.signup,
			},
			"login": &graphql.Field{
				Type: authType,
				Args: graphql.FieldConfigArgument{
					"loginInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(loginInputType)},
				},
				Resolve: r.login,
			},
			"createTrip": &graphql.Field{
				Type: tripType,
				Args: graphql.FieldConfigArgument{
					"createTripInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createTripInputType)},
				},
				Resolve: r.createTrip,
			},
			"updateTrip": &graphql.Field{
				Type: tripType,
				Args: graphql.FieldConfigArgument{
					"updateTripInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateTripInputType)},
				},
				Resolve: r.updateTrip,
			},
			"removeTrip": &graphql.Field{
				Type: tripType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.removeTrip,
			},
			"addCollaborator": &graphql.Field{
				Type: tripType,
				Args: graphql.FieldConfigArgument{
					"tripId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.addCollaborator,
			},
			"removeCollaborator": &graphql.Field{
				Type: tripType,
				Args: graphql.FieldConfigArgument{
					"tripId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.removeCollaborator,
			},
			"createNote": &graphql.Field{
				Type: tripType,
				Args: graphql.FieldConfigArgument{
					"createNoteInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createNoteInputType)},
				},
				Resolve: r.createNote,
			},
			"updateNote": &graphql.Field{
				Type: tripType,
				Args: graphql.FieldConfigArgument{
					"updateNoteInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateNoteInputType)},
				},
				Resolve: r.updateNote,
			},
			"removeNote": &graphql.Field{
				Type: tripType,
				Args: graphql.FieldConfigArgument{
					"tripId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"noteId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.removeNote,
			},
		},
	})

	subscription := graphql.NewObject(graphql.ObjectConfig{
		Name: "Subscription",
		Fields: graphql.Fields{
			"noteAdded": &graphql.Field{
				Type:      tripType,
				Args:      tripIDArg,
				Resolve:   resolveSource,
				Subscribe: r.subscribeTrips("noteAdded"),
			},
			"noteUpdated": &graphql.Field{
				Type:      tripType,
				Args:      tripIDArg,
				Resolve:   resolveSource,
				Subscribe: r.subscribeTrips("noteUpdated"),
			},
			"noteRemoved": &graphql.Field{
				Type:      tripType,
				Args:      tripIDArg,
				Resolve:   resolveSource,
				Subscribe: r.subscribeTrips("noteRemoved"),
			},
			"collaboratorAdded": &graphql.Field{
				Type:      tripType,
				Args:      tripIDArg,
				Resolve:   resolveSource,
				Subscribe: r.subscribeTrips("collaboratorAdded"),
			},
			"tripRemoved": &graphql.Field{
				Type:      tripType,
				Args:      tripIDArg,
				Resolve:   resolveSource,
				Subscribe: r.subscribeTrips("tripRemoved"),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:        query,
		Mutation:     mutation,
		Subscription: subscription,
	})
}
