// Package graphql holds the GraphQL schema for the engagement API. The
// schema is kept as a plain string and parsed at startup against the hand
// written resolvers in the server package.
package graphql

// GetGQLSchema returns the full schema definition.
func GetGQLSchema() string {
	return schemaString
}

const schemaString = `
schema {
	query: Query
	mutation: Mutation
}

type Query {
	user(id: ID!): User!
	userByName(name: String!): User
	artist(id: ID!): Artist!
	album(id: ID!): Album!
	track(id: ID!): Track!
	post(id: ID!): Post!
	comment(id: ID!): Comment!

	# Read-only report of half-present edges on one user document. Repair
	# is an operator decision; this only finds the work.
	userEdgeAudit(userId: ID!): [EdgeMismatch!]!
}

type Mutation {
	createUser(input: NewUserInput!): User!
	createArtist(input: NewEntityInput!): Artist!
	createAlbum(input: NewEntityInput!): Album!
	createTrack(input: NewEntityInput!): Track!

	followUser(input: FollowUserInput!): FollowUserPayload!
	unfollowUser(input: FollowUserInput!): FollowUserPayload!
	followArtist(input: UserArtistInput!): UserArtistPayload!
	unfollowArtist(input: UserArtistInput!): UserArtistPayload!
	followAlbum(input: UserAlbumInput!): UserAlbumPayload!
	unfollowAlbum(input: UserAlbumInput!): UserAlbumPayload!
	followTrack(input: UserTrackInput!): UserTrackPayload!
	unfollowTrack(input: UserTrackInput!): UserTrackPayload!

	likePost(input: UserPostInput!): UserPostPayload!
	undoLikePost(input: UserPostInput!): UserPostPayload!
	dislikePost(input: UserPostInput!): UserPostPayload!
	undoDislikePost(input: UserPostInput!): UserPostPayload!

	likeComment(input: UserCommentInput!): UserCommentPayload!
	undoLikeComment(input: UserCommentInput!): UserCommentPayload!
	dislikeComment(input: UserCommentInput!): UserCommentPayload!
	undoDislikeComment(input: UserCommentInput!): UserCommentPayload!

	likeArtist(input: UserArtistInput!): UserArtistPayload!
	undoLikeArtist(input: UserArtistInput!): UserArtistPayload!
	likeAlbum(input: UserAlbumInput!): UserAlbumPayload!
	undoLikeAlbum(input: UserAlbumInput!): UserAlbumPayload!
	likeTrack(input: UserTrackInput!): UserTrackPayload!
	undoLikeTrack(input: UserTrackInput!): UserTrackPayload!

	createPost(input: NewPostInput!): CreatePostPayload!
	deletePost(input: DeletePostInput!): DeletePostPayload!
	createComment(input: NewCommentInput!): CreateCommentPayload!
	deleteComment(input: DeleteCommentInput!): Comment!
}

enum PostType {
	ARTIST
	ALBUM
	TRACK
}

type User {
	id: ID!
	name: String!
	createdAt: String!
	following: [ID!]!
	followers: [ID!]!
	followedArtists: [ID!]!
	followedAlbums: [ID!]!
	followedTracks: [ID!]!
	posts: [ID!]!
	comments: [ID!]!
	likedPosts: [ID!]!
	dislikedPosts: [ID!]!
	likedComments: [ID!]!
	dislikedComments: [ID!]!
	likedArtists: [ID!]!
	likedAlbums: [ID!]!
	likedTracks: [ID!]!
}

type Artist {
	id: ID!
	name: String!
	posts: [ID!]!
	likes: Int!
	likers: [ID!]!
	followers: [ID!]!
}

type Album {
	id: ID!
	name: String!
	posts: [ID!]!
	likes: Int!
	likers: [ID!]!
	followers: [ID!]!
}

type Track {
	id: ID!
	name: String!
	posts: [ID!]!
	likes: Int!
	likers: [ID!]!
	followers: [ID!]!
}

type Post {
	id: ID!
	createdAt: String!
	poster: ID!
	postType: PostType!
	artistId: ID
	albumId: ID
	trackId: ID
	title: String!
	contentType: String!
	content: String!
	likes: Int!
	dislikes: Int!
	likers: [ID!]!
	dislikers: [ID!]!
	comments: [ID!]!
}

type Comment {
	id: ID!
	createdAt: String!
	post: ID!
	poster: ID!
	content: String!
	likes: Int!
	dislikes: Int!
	likers: [ID!]!
	dislikers: [ID!]!
	parent: ID
	children: [ID!]!
	isDeleted: Boolean!
}

type EdgeMismatch {
	kind: String!
	ownerId: ID!
	targetId: ID!
	detail: String!
}

type FollowUserPayload {
	follower: User!
	followed: User!
}

type UserArtistPayload {
	user: User!
	artist: Artist!
}

type UserAlbumPayload {
	user: User!
	album: Album!
}

type UserTrackPayload {
	user: User!
	track: Track!
}

type UserPostPayload {
	user: User!
	post: Post!
}

type UserCommentPayload {
	user: User!
	comment: Comment!
}

type CreatePostPayload {
	post: Post!
	poster: User!
	artist: Artist
	album: Album
	track: Track
}

type DeletePostPayload {
	deletedPostId: ID!
	poster: User!
	artist: Artist
	album: Album
	track: Track
}

type CreateCommentPayload {
	comment: Comment!
	post: Post!
	commenter: User!
}

input NewUserInput {
	id: ID!
	name: String!
}

input NewEntityInput {
	name: String!
}

input FollowUserInput {
	followerId: ID!
	followedId: ID!
}

input UserArtistInput {
	userId: ID!
	artistId: ID!
}

input UserAlbumInput {
	userId: ID!
	albumId: ID!
}

input UserTrackInput {
	userId: ID!
	trackId: ID!
}

input UserPostInput {
	userId: ID!
	postId: ID!
}

input UserCommentInput {
	userId: ID!
	commentId: ID!
}

input NewPostInput {
	posterId: ID!
	title: String!
	postType: PostType!
	entityId: ID!
	contentType: String!
	content: String!
}

input DeletePostInput {
	userId: ID!
	postId: ID!
}

input NewCommentInput {
	postId: ID!
	commenterId: ID!
	content: String!
	parentId: ID
}

input DeleteCommentInput {
	commentId: ID!
	commenterId: ID!
}
`
