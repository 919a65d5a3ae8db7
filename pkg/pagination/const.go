package pagination

// PageSize is the fixed number of news items per page
const PageSize = 10

// VisualPageSize is the number of visuals shown per gallery page
const VisualPageSize = 12

// DefaultPage is used when no page parameter is supplied
const DefaultPage = 1
