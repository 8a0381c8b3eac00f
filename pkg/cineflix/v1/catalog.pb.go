// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: cineflix/v1/catalog.proto

package cineflixv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type CreateMovieRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Title         string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Genres        []string               `protobuf:"bytes,2,rep,name=genres,proto3" json:"genres,omitempty"`
	Directors     []string               `protobuf:"bytes,3,rep,name=directors,proto3" json:"directors,omitempty"`
	Actors        []string               `protobuf:"bytes,4,rep,name=actors,proto3" json:"actors,omitempty"`
	RunTime       int32                  `protobuf:"varint,5,opt,name=run_time,json=runTime,proto3" json:"run_time,omitempty"`            // minutes
	ReleaseDate   string                 `protobuf:"bytes,6,opt,name=release_date,json=releaseDate,proto3" json:"release_date,omitempty"` // YYYY-MM-DD
	Description   string                 `protobuf:"bytes,7,opt,name=description,proto3" json:"description,omitempty"`
	PosterUrl     string                 `protobuf:"bytes,8,opt,name=poster_url,json=posterUrl,proto3" json:"poster_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateMovieRequest) Reset() {
	*x = CreateMovieRequest{}
	mi := &file_cineflix_v1_catalog_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateMovieRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateMovieRequest) ProtoMessage() {}

func (x *CreateMovieRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_catalog_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateMovieRequest.ProtoReflect.Descriptor instead.
func (*CreateMovieRequest) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_catalog_proto_rawDescGZIP(), []int{0}
}

func (x *CreateMovieRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CreateMovieRequest) GetGenres() []string {
	if x != nil {
		return x.Genres
	}
	return nil
}

func (x *CreateMovieRequest) GetDirectors() []string {
	if x != nil {
		return x.Directors
	}
	return nil
}

func (x *CreateMovieRequest) GetActors() []string {
	if x != nil {
		return x.Actors
	}
	return nil
}

func (x *CreateMovieRequest) GetRunTime() int32 {
	if x != nil {
		return x.RunTime
	}
	return 0
}

func (x *CreateMovieRequest) GetReleaseDate() string {
	if x != nil {
		return x.ReleaseDate
	}
	return ""
}

func (x *CreateMovieRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateMovieRequest) GetPosterUrl() string {
	if x != nil {
		return x.PosterUrl
	}
	return ""
}

type GetMovieRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMovieRequest) Reset() {
	*x = GetMovieRequest{}
	mi := &file_cineflix_v1_catalog_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMovieRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMovieRequest) ProtoMessage() {}

func (x *GetMovieRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_catalog_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMovieRequest.ProtoReflect.Descriptor instead.
func (*GetMovieRequest) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_catalog_proto_rawDescGZIP(), []int{1}
}

func (x *GetMovieRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetMovieByTitleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Title         string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMovieByTitleRequest) Reset() {
	*x = GetMovieByTitleRequest{}
	mi := &file_cineflix_v1_catalog_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMovieByTitleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMovieByTitleRequest) ProtoMessage() {}

func (x *GetMovieByTitleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_catalog_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMovieByTitleRequest.ProtoReflect.Descriptor instead.
func (*GetMovieByTitleRequest) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_catalog_proto_rawDescGZIP(), []int{2}
}

func (x *GetMovieByTitleRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

type ListMoviesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMoviesRequest) Reset() {
	*x = ListMoviesRequest{}
	mi := &file_cineflix_v1_catalog_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMoviesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMoviesRequest) ProtoMessage() {}

func (x *ListMoviesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_catalog_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMoviesRequest.ProtoReflect.Descriptor instead.
func (*ListMoviesRequest) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_catalog_proto_rawDescGZIP(), []int{3}
}

type ListMoviesByGenreRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Genre         string                 `protobuf:"bytes,1,opt,name=genre,proto3" json:"genre,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMoviesByGenreRequest) Reset() {
	*x = ListMoviesByGenreRequest{}
	mi := &file_cineflix_v1_catalog_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMoviesByGenreRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMoviesByGenreRequest) ProtoMessage() {}

func (x *ListMoviesByGenreRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_catalog_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMoviesByGenreRequest.ProtoReflect.Descriptor instead.
func (*ListMoviesByGenreRequest) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_catalog_proto_rawDescGZIP(), []int{4}
}

func (x *ListMoviesByGenreRequest) GetGenre() string {
	if x != nil {
		return x.Genre
	}
	return ""
}

type ListMoviesByDirectorRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Director      string                 `protobuf:"bytes,1,opt,name=director,proto3" json:"director,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMoviesByDirectorRequest) Reset() {
	*x = ListMoviesByDirectorRequest{}
	mi := &file_cineflix_v1_catalog_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMoviesByDirectorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMoviesByDirectorRequest) ProtoMessage() {}

func (x *ListMoviesByDirectorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_catalog_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMoviesByDirectorRequest.ProtoReflect.Descriptor instead.
func (*ListMoviesByDirectorRequest) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_catalog_proto_rawDescGZIP(), []int{5}
}

func (x *ListMoviesByDirectorRequest) GetDirector() string {
	if x != nil {
		return x.Director
	}
	return ""
}

type ListMoviesByActorRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Actor         string                 `protobuf:"bytes,1,opt,name=actor,proto3" json:"actor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMoviesByActorRequest) Reset() {
	*x = ListMoviesByActorRequest{}
	mi := &file_cineflix_v1_catalog_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMoviesByActorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMoviesByActorRequest) ProtoMessage() {}

func (x *ListMoviesByActorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_catalog_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMoviesByActorRequest.ProtoReflect.Descriptor instead.
func (*ListMoviesByActorRequest) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_catalog_proto_rawDescGZIP(), []int{6}
}

func (x *ListMoviesByActorRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

type UpdateMovieRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Genres        []string               `protobuf:"bytes,3,rep,name=genres,proto3" json:"genres,omitempty"`
	Directors     []string               `protobuf:"bytes,4,rep,name=directors,proto3" json:"directors,omitempty"`
	Actors        []string               `protobuf:"bytes,5,rep,name=actors,proto3" json:"actors,omitempty"`
	RunTime       int32                  `protobuf:"varint,6,opt,name=run_time,json=runTime,proto3" json:"run_time,omitempty"`
	ReleaseDate   string                 `protobuf:"bytes,7,opt,name=release_date,json=releaseDate,proto3" json:"release_date,omitempty"`
	Description   string                 `protobuf:"bytes,8,opt,name=description,proto3" json:"description,omitempty"`
	PosterUrl     string                 `protobuf:"bytes,9,opt,name=poster_url,json=posterUrl,proto3" json:"poster_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateMovieRequest) Reset() {
	*x = UpdateMovieRequest{}
	mi := &file_cineflix_v1_catalog_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateMovieRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateMovieRequest) ProtoMessage() {}

func (x *UpdateMovieRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_catalog_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateMovieRequest.ProtoReflect.Descriptor instead.
func (*UpdateMovieRequest) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_catalog_proto_rawDescGZIP(), []int{7}
}

func (x *UpdateMovieRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateMovieRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *UpdateMovieRequest) GetGenres() []string {
	if x != nil {
		return x.Genres
	}
	return nil
}

func (x *UpdateMovieRequest) GetDirectors() []string {
	if x != nil {
		return x.Directors
	}
	return nil
}

func (x *UpdateMovieRequest) GetActors() []string {
	if x != nil {
		return x.Actors
	}
	return nil
}

func (x *UpdateMovieRequest) GetRunTime() int32 {
	if x != nil {
		return x.RunTime
	}
	return 0
}

func (x *UpdateMovieRequest) GetReleaseDate() string {
	if x != nil {
		return x.ReleaseDate
	}
	return ""
}

func (x *UpdateMovieRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *UpdateMovieRequest) GetPosterUrl() string {
	if x != nil {
		return x.PosterUrl
	}
	return ""
}

type DeleteMovieRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteMovieRequest) Reset() {
	*x = DeleteMovieRequest{}
	mi := &file_cineflix_v1_catalog_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteMovieRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteMovieRequest) ProtoMessage() {}

func (x *DeleteMovieRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_catalog_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteMovieRequest.ProtoReflect.Descriptor instead.
func (*DeleteMovieRequest) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_catalog_proto_rawDescGZIP(), []int{8}
}

func (x *DeleteMovieRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteMovieResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteMovieResponse) Reset() {
	*x = DeleteMovieResponse{}
	mi := &file_cineflix_v1_catalog_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteMovieResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteMovieResponse) ProtoMessage() {}

func (x *DeleteMovieResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_catalog_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteMovieResponse.ProtoReflect.Descriptor instead.
func (*DeleteMovieResponse) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_catalog_proto_rawDescGZIP(), []int{9}
}

func (x *DeleteMovieResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *DeleteMovieResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type MovieResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Genres        []string               `protobuf:"bytes,3,rep,name=genres,proto3" json:"genres,omitempty"`
	Directors     []string               `protobuf:"bytes,4,rep,name=directors,proto3" json:"directors,omitempty"`
	Actors        []string               `protobuf:"bytes,5,rep,name=actors,proto3" json:"actors,omitempty"`
	RunTime       int32                  `protobuf:"varint,6,opt,name=run_time,json=runTime,proto3" json:"run_time,omitempty"`
	ReleaseDate   string                 `protobuf:"bytes,7,opt,name=release_date,json=releaseDate,proto3" json:"release_date,omitempty"`
	Rating        *float64               `protobuf:"fixed64,8,opt,name=rating,proto3,oneof" json:"rating,omitempty"` // absent until the movie has reviews
	Description   string                 `protobuf:"bytes,9,opt,name=description,proto3" json:"description,omitempty"`
	PosterUrl     string                 `protobuf:"bytes,10,opt,name=poster_url,json=posterUrl,proto3" json:"poster_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MovieResponse) Reset() {
	*x = MovieResponse{}
	mi := &file_cineflix_v1_catalog_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MovieResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MovieResponse) ProtoMessage() {}

func (x *MovieResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_catalog_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MovieResponse.ProtoReflect.Descriptor instead.
func (*MovieResponse) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_catalog_proto_rawDescGZIP(), []int{10}
}

func (x *MovieResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *MovieResponse) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *MovieResponse) GetGenres() []string {
	if x != nil {
		return x.Genres
	}
	return nil
}

func (x *MovieResponse) GetDirectors() []string {
	if x != nil {
		return x.Directors
	}
	return nil
}

func (x *MovieResponse) GetActors() []string {
	if x != nil {
		return x.Actors
	}
	return nil
}

func (x *MovieResponse) GetRunTime() int32 {
	if x != nil {
		return x.RunTime
	}
	return 0
}

func (x *MovieResponse) GetReleaseDate() string {
	if x != nil {
		return x.ReleaseDate
	}
	return ""
}

func (x *MovieResponse) GetRating() float64 {
	if x != nil && x.Rating != nil {
		return *x.Rating
	}
	return 0
}

func (x *MovieResponse) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *MovieResponse) GetPosterUrl() string {
	if x != nil {
		return x.PosterUrl
	}
	return ""
}

type ListMoviesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Movies        []*MovieResponse       `protobuf:"bytes,1,rep,name=movies,proto3" json:"movies,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMoviesResponse) Reset() {
	*x = ListMoviesResponse{}
	mi := &file_cineflix_v1_catalog_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMoviesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMoviesResponse) ProtoMessage() {}

func (x *ListMoviesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_catalog_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMoviesResponse.ProtoReflect.Descriptor instead.
func (*ListMoviesResponse) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_catalog_proto_rawDescGZIP(), []int{11}
}

func (x *ListMoviesResponse) GetMovies() []*MovieResponse {
	if x != nil {
		return x.Movies
	}
	return nil
}

var File_cineflix_v1_catalog_proto protoreflect.FileDescriptor

const file_cineflix_v1_catalog_proto_rawDesc = "" +
	"\n" +
	"\x19cineflix/v1/catalog.proto\x12\vcineflix.v1\"\xf7\x01\n" +
	"\x12CreateMovieRequest\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\x12\x16\n" +
	"\x06genres\x18\x02 \x03(\tR\x06genres\x12\x1c\n" +
	"\tdirectors\x18\x03 \x03(\tR\tdirectors\x12\x16\n" +
	"\x06actors\x18\x04 \x03(\tR\x06actors\x12\x19\n" +
	"\brun_time\x18\x05 \x01(\x05R\arunTime\x12!\n" +
	"\frelease_date\x18\x06 \x01(\tR\vreleaseDate\x12 \n" +
	"\vdescription\x18\a \x01(\tR\vdescription\x12\x1d\n" +
	"\n" +
	"poster_url\x18\b \x01(\tR\tposterUrl\"!\n" +
	"\x0fGetMovieRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\".\n" +
	"\x16GetMovieByTitleRequest\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\"\x13\n" +
	"\x11ListMoviesRequest\"0\n" +
	"\x18ListMoviesByGenreRequest\x12\x14\n" +
	"\x05genre\x18\x01 \x01(\tR\x05genre\"9\n" +
	"\x1bListMoviesByDirectorRequest\x12\x1a\n" +
	"\bdirector\x18\x01 \x01(\tR\bdirector\"0\n" +
	"\x18ListMoviesByActorRequest\x12\x14\n" +
	"\x05actor\x18\x01 \x01(\tR\x05actor\"\x87\x02\n" +
	"\x12UpdateMovieRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x16\n" +
	"\x06genres\x18\x03 \x03(\tR\x06genres\x12\x1c\n" +
	"\tdirectors\x18\x04 \x03(\tR\tdirectors\x12\x16\n" +
	"\x06actors\x18\x05 \x03(\tR\x06actors\x12\x19\n" +
	"\brun_time\x18\x06 \x01(\x05R\arunTime\x12!\n" +
	"\frelease_date\x18\a \x01(\tR\vreleaseDate\x12 \n" +
	"\vdescription\x18\b \x01(\tR\vdescription\x12\x1d\n" +
	"\n" +
	"poster_url\x18\t \x01(\tR\tposterUrl\"$\n" +
	"\x12DeleteMovieRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"I\n" +
	"\x13DeleteMovieResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"\xaa\x02\n" +
	"\rMovieResponse\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x16\n" +
	"\x06genres\x18\x03 \x03(\tR\x06genres\x12\x1c\n" +
	"\tdirectors\x18\x04 \x03(\tR\tdirectors\x12\x16\n" +
	"\x06actors\x18\x05 \x03(\tR\x06actors\x12\x19\n" +
	"\brun_time\x18\x06 \x01(\x05R\arunTime\x12!\n" +
	"\frelease_date\x18\a \x01(\tR\vreleaseDate\x12\x1b\n" +
	"\x06rating\x18\b \x01(\x01H\x00R\x06rating\x88\x01\x01\x12 \n" +
	"\vdescription\x18\t \x01(\tR\vdescription\x12\x1d\n" +
	"\n" +
	"poster_url\x18\n" +
	" \x01(\tR\tposterUrlB\t\n" +
	"\a_rating\"H\n" +
	"\x12ListMoviesResponse\x122\n" +
	"\x06movies\x18\x01 \x03(\v2\x1a.cineflix.v1.MovieResponseR\x06movies2\x80\x06\n" +
	"\x0eCatalogService\x12J\n" +
	"\vCreateMovie\x12\x1f.cineflix.v1.CreateMovieRequest\x1a\x1a.cineflix.v1.MovieResponse\x12D\n" +
	"\bGetMovie\x12\x1c.cineflix.v1.GetMovieRequest\x1a\x1a.cineflix.v1.MovieResponse\x12R\n" +
	"\x0fGetMovieByTitle\x12#.cineflix.v1.GetMovieByTitleRequest\x1a\x1a.cineflix.v1.MovieResponse\x12M\n" +
	"\n" +
	"ListMovies\x12\x1e.cineflix.v1.ListMoviesRequest\x1a\x1f.cineflix.v1.ListMoviesResponse\x12[\n" +
	"\x11ListMoviesByGenre\x12%.cineflix.v1.ListMoviesByGenreRequest\x1a\x1f.cineflix.v1.ListMoviesResponse\x12a\n" +
	"\x14ListMoviesByDirector\x12(.cineflix.v1.ListMoviesByDirectorRequest\x1a\x1f.cineflix.v1.ListMoviesResponse\x12[\n" +
	"\x11ListMoviesByActor\x12%.cineflix.v1.ListMoviesByActorRequest\x1a\x1f.cineflix.v1.ListMoviesResponse\x12J\n" +
	"\vUpdateMovie\x12\x1f.cineflix.v1.UpdateMovieRequest\x1a\x1a.cineflix.v1.MovieResponse\x12P\n" +
	"\vDeleteMovie\x12\x1f.cineflix.v1.DeleteMovieRequest\x1a .cineflix.v1.DeleteMovieResponseB:Z8github.com/cineflix/dbservice/pkg/cineflix/v1;cineflixv1b\x06proto3"

var (
	file_cineflix_v1_catalog_proto_rawDescOnce sync.Once
	file_cineflix_v1_catalog_proto_rawDescData []byte
)

func file_cineflix_v1_catalog_proto_rawDescGZIP() []byte {
	file_cineflix_v1_catalog_proto_rawDescOnce.Do(func() {
		file_cineflix_v1_catalog_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_cineflix_v1_catalog_proto_rawDesc), len(file_cineflix_v1_catalog_proto_rawDesc)))
	})
	return file_cineflix_v1_catalog_proto_rawDescData
}

var file_cineflix_v1_catalog_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_cineflix_v1_catalog_proto_goTypes = []any{
	(*CreateMovieRequest)(nil),          // 0: cineflix.v1.CreateMovieRequest
	(*GetMovieRequest)(nil),             // 1: cineflix.v1.GetMovieRequest
	(*GetMovieByTitleRequest)(nil),      // 2: cineflix.v1.GetMovieByTitleRequest
	(*ListMoviesRequest)(nil),           // 3: cineflix.v1.ListMoviesRequest
	(*ListMoviesByGenreRequest)(nil),    // 4: cineflix.v1.ListMoviesByGenreRequest
	(*ListMoviesByDirectorRequest)(nil), // 5: cineflix.v1.ListMoviesByDirectorRequest
	(*ListMoviesByActorRequest)(nil),    // 6: cineflix.v1.ListMoviesByActorRequest
	(*UpdateMovieRequest)(nil),          // 7: cineflix.v1.UpdateMovieRequest
	(*DeleteMovieRequest)(nil),          // 8: cineflix.v1.DeleteMovieRequest
	(*DeleteMovieResponse)(nil),         // 9: cineflix.v1.DeleteMovieResponse
	(*MovieResponse)(nil),               // 10: cineflix.v1.MovieResponse
	(*ListMoviesResponse)(nil),          // 11: cineflix.v1.ListMoviesResponse
}
var file_cineflix_v1_catalog_proto_depIdxs = []int32{
	10, // 0: cineflix.v1.ListMoviesResponse.movies:type_name -> cineflix.v1.MovieResponse
	0,  // 1: cineflix.v1.CatalogService.CreateMovie:input_type -> cineflix.v1.CreateMovieRequest
	1,  // 2: cineflix.v1.CatalogService.GetMovie:input_type -> cineflix.v1.GetMovieRequest
	2,  // 3: cineflix.v1.CatalogService.GetMovieByTitle:input_type -> cineflix.v1.GetMovieByTitleRequest
	3,  // 4: cineflix.v1.CatalogService.ListMovies:input_type -> cineflix.v1.ListMoviesRequest
	4,  // 5: cineflix.v1.CatalogService.ListMoviesByGenre:input_type -> cineflix.v1.ListMoviesByGenreRequest
	5,  // 6: cineflix.v1.CatalogService.ListMoviesByDirector:input_type -> cineflix.v1.ListMoviesByDirectorRequest
	6,  // 7: cineflix.v1.CatalogService.ListMoviesByActor:input_type -> cineflix.v1.ListMoviesByActorRequest
	7,  // 8: cineflix.v1.CatalogService.UpdateMovie:input_type -> cineflix.v1.UpdateMovieRequest
	8,  // 9: cineflix.v1.CatalogService.DeleteMovie:input_type -> cineflix.v1.DeleteMovieRequest
	10, // 10: cineflix.v1.CatalogService.CreateMovie:output_type -> cineflix.v1.MovieResponse
	10, // 11: cineflix.v1.CatalogService.GetMovie:output_type -> cineflix.v1.MovieResponse
	10, // 12: cineflix.v1.CatalogService.GetMovieByTitle:output_type -> cineflix.v1.MovieResponse
	11, // 13: cineflix.v1.CatalogService.ListMovies:output_type -> cineflix.v1.ListMoviesResponse
	11, // 14: cineflix.v1.CatalogService.ListMoviesByGenre:output_type -> cineflix.v1.ListMoviesResponse
	11, // 15: cineflix.v1.CatalogService.ListMoviesByDirector:output_type -> cineflix.v1.ListMoviesResponse
	11, // 16: cineflix.v1.CatalogService.ListMoviesByActor:output_type -> cineflix.v1.ListMoviesResponse
	10, // 17: cineflix.v1.CatalogService.UpdateMovie:output_type -> cineflix.v1.MovieResponse
	9,  // 18: cineflix.v1.CatalogService.DeleteMovie:output_type -> cineflix.v1.DeleteMovieResponse
	10, // [10:19] is the sub-list for method output_type
	1,  // [1:10] is the sub-list for method input_type
	1,  // [1:1] is the sub-list for extension type_name
	1,  // [1:1] is the sub-list for extension extendee
	0,  // [0:1] is the sub-list for field type_name
}

func init() { file_cineflix_v1_catalog_proto_init() }
func file_cineflix_v1_catalog_proto_init() {
	if File_cineflix_v1_catalog_proto != nil {
		return
	}
	file_cineflix_v1_catalog_proto_msgTypes[10].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_cineflix_v1_catalog_proto_rawDesc), len(file_cineflix_v1_catalog_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_cineflix_v1_catalog_proto_goTypes,
		DependencyIndexes: file_cineflix_v1_catalog_proto_depIdxs,
		MessageInfos:      file_cineflix_v1_catalog_proto_msgTypes,
	}.Build()
	File_cineflix_v1_catalog_proto = out.File
	file_cineflix_v1_catalog_proto_goTypes = nil
	file_cineflix_v1_catalog_proto_depIdxs = nil
}
