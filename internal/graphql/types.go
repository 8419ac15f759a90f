package graphql

import "github.com/graphql-go/graphql"

var authType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Auth",
	Fields: graphql.Fields{
		"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var noteType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Note",
	Fields: graphql.Fields{
		"_id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"collaboratorId": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"content":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"createdAt":      &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var tripType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Trip",
	Fields: graphql.Fields{
		"_id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"destination":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"fromDate":      &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"toDate":        &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"collaborators": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		"notes":         &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(noteType))},
	},
})

var popularDestinationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PopularDestination",
	Fields: graphql.Fields{
		"destination": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"count":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var signupInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "SignupInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":            &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":           &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"confirmPassword": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var loginInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "LoginInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var createTripInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateTripInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"destination":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"fromDate":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.DateTime)},
		"toDate":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.DateTime)},
		"collaborators": &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
	},
})

var updateTripInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateTripInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"destination": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"fromDate":    &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"toDate":      &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

var searchTripInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "SearchTripInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"destination": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"fromDate":    &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"toDate":      &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

var createNoteInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateNoteInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"tripId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"content": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var updateNoteInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateNoteInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"tripId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"noteId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"content": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})
