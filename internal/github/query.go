package github

// issuesQuery fetches the 100 most recently created issues of a repository
// with the field values of their first project board item.
const issuesQuery = `
query WeeklyIssues($owner: String!, $name: String!) {
  repository(owner: $owner, name: $name) {
    issues(last: 100, orderBy: {field: CREATED_AT, direction: DESC}) {
      edges {
        node {
          title
          url
          closed
          createdAt
          closedAt
          projectItems(first: 1) {
            totalCount
            edges {
              node {
                project {
                  title
                }
                updatedAt
                id
                fieldValues(first: 20) {
                  nodes {
                    ... on ProjectV2ItemFieldSingleSelectValue {
                      field {
                        ... on ProjectV2SingleSelectField {
                          name
                        }
                      }
                      name
                    }
                    ... on ProjectV2ItemFieldDateValue {
                      field {
                        ... on ProjectV2Field {
                          name
                        }
                      }
                      date
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}
`
