package mongo

// AnyETag represents the wildchar that corresponds to not check the ETag value for update requests
const AnyETag = "*"
