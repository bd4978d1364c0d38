package github

import (
	"context"
	"fmt"

	"github.com/shurcooL/githubv4"
)

// BoardField is a custom field declared on a project board.
type BoardField struct {
	Name     string
	DataType string // e.g. SINGLE_SELECT, DATE, TEXT
}

// Board is a Projects v2 board linked to a repository.
type Board struct {
	Number int
	Title  string
	Fields []BoardField
}

// HasField reports whether the board declares a field called name.
func (b Board) HasField(name string) bool {
	for _, f := range b.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

type boardsQuery struct {
	Repository struct {
		ProjectsV2 struct {
			Nodes []struct {
				Number githubv4.Int
				Title  githubv4.String
				Fields struct {
					Nodes []struct {
						Typename string `graphql:"__typename"`
						Common   struct {
							Name     githubv4.String
							DataType githubv4.String
						} `graphql:"... on ProjectV2FieldCommon"`
					}
				} `graphql:"fields(first: 50)"`
			}
		} `graphql:"projectsV2(first: 20)"`
	} `graphql:"repository(owner: $owner, name: $name)"`
}

// Boards lists the project boards linked to owner/name with their fields.
func (c *Client) Boards(ctx context.Context, owner, name string) ([]Board, error) {
	gql := githubv4.NewEnterpriseClient(c.endpoint, c.http)

	var q boardsQuery
	err := gql.Query(ctx, &q, map[string]any{
		"owner": githubv4.String(owner),
		"name":  githubv4.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("query project boards: %w", err)
	}

	boards := make([]Board, 0, len(q.Repository.ProjectsV2.Nodes))
	for _, n := range q.Repository.ProjectsV2.Nodes {
		b := Board{Number: int(n.Number), Title: string(n.Title)}
		for _, f := range n.Fields.Nodes {
			b.Fields = append(b.Fields, BoardField{
				Name:     string(f.Common.Name),
				DataType: string(f.Common.DataType),
			})
		}
		boards = append(boards, b)
	}
	return boards, nil
}
