// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: cineflix/v1/library.proto

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

type LibraryEntryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	MovieId       string                 `protobuf:"bytes,2,opt,name=movie_id,json=movieId,proto3" json:"movie_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LibraryEntryRequest) Reset() {
	*x = LibraryEntryRequest{}
	mi := &file_cineflix_v1_library_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LibraryEntryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LibraryEntryRequest) ProtoMessage() {}

func (x *LibraryEntryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_library_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LibraryEntryRequest.ProtoReflect.Descriptor instead.
func (*LibraryEntryRequest) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_library_proto_rawDescGZIP(), []int{0}
}

func (x *LibraryEntryRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *LibraryEntryRequest) GetMovieId() string {
	if x != nil {
		return x.MovieId
	}
	return ""
}

type ListLibraryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLibraryRequest) Reset() {
	*x = ListLibraryRequest{}
	mi := &file_cineflix_v1_library_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLibraryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLibraryRequest) ProtoMessage() {}

func (x *ListLibraryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_library_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLibraryRequest.ProtoReflect.Descriptor instead.
func (*ListLibraryRequest) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_library_proto_rawDescGZIP(), []int{1}
}

func (x *ListLibraryRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

// success is false when the user or movie does not exist or the entry
// is already present; those outcomes are not errors.
type LibraryMutationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LibraryMutationResponse) Reset() {
	*x = LibraryMutationResponse{}
	mi := &file_cineflix_v1_library_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LibraryMutationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LibraryMutationResponse) ProtoMessage() {}

func (x *LibraryMutationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_library_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LibraryMutationResponse.ProtoReflect.Descriptor instead.
func (*LibraryMutationResponse) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_library_proto_rawDescGZIP(), []int{2}
}

func (x *LibraryMutationResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type ListLibraryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MovieIds      []string               `protobuf:"bytes,1,rep,name=movie_ids,json=movieIds,proto3" json:"movie_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLibraryResponse) Reset() {
	*x = ListLibraryResponse{}
	mi := &file_cineflix_v1_library_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLibraryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLibraryResponse) ProtoMessage() {}

func (x *ListLibraryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_library_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLibraryResponse.ProtoReflect.Descriptor instead.
func (*ListLibraryResponse) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_library_proto_rawDescGZIP(), []int{3}
}

func (x *ListLibraryResponse) GetMovieIds() []string {
	if x != nil {
		return x.MovieIds
	}
	return nil
}

var File_cineflix_v1_library_proto protoreflect.FileDescriptor

const file_cineflix_v1_library_proto_rawDesc = "" +
	"\n" +
	"\x19cineflix/v1/library.proto\x12\vcineflix.v1\"I\n" +
	"\x13LibraryEntryRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x19\n" +
	"\bmovie_id\x18\x02 \x01(\tR\amovieId\"-\n" +
	"\x12ListLibraryRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"3\n" +
	"\x17LibraryMutationResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\"2\n" +
	"\x13ListLibraryResponse\x12\x1b\n" +
	"\tmovie_ids\x18\x01 \x03(\tR\bmovieIds2\xbf\x04\n" +
	"\x12UserLibraryService\x12Z\n" +
	"\x10AddFavoriteMovie\x12 .cineflix.v1.LibraryEntryRequest\x1a$.cineflix.v1.LibraryMutationResponse\x12]\n" +
	"\x13RemoveFavoriteMovie\x12 .cineflix.v1.LibraryEntryRequest\x1a$.cineflix.v1.LibraryMutationResponse\x12W\n" +
	"\x12ListFavoriteMovies\x12\x1f.cineflix.v1.ListLibraryRequest\x1a .cineflix.v1.ListLibraryResponse\x12[\n" +
	"\x11AddWatchListMovie\x12 .cineflix.v1.LibraryEntryRequest\x1a$.cineflix.v1.LibraryMutationResponse\x12^\n" +
	"\x14RemoveWatchListMovie\x12 .cineflix.v1.LibraryEntryRequest\x1a$.cineflix.v1.LibraryMutationResponse\x12X\n" +
	"\x13ListWatchListMovies\x12\x1f.cineflix.v1.ListLibraryRequest\x1a .cineflix.v1.ListLibraryResponseB:Z8github.com/cineflix/dbservice/pkg/cineflix/v1;cineflixv1b\x06proto3"

var (
	file_cineflix_v1_library_proto_rawDescOnce sync.Once
	file_cineflix_v1_library_proto_rawDescData []byte
)

func file_cineflix_v1_library_proto_rawDescGZIP() []byte {
	file_cineflix_v1_library_proto_rawDescOnce.Do(func() {
		file_cineflix_v1_library_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_cineflix_v1_library_proto_rawDesc), len(file_cineflix_v1_library_proto_rawDesc)))
	})
	return file_cineflix_v1_library_proto_rawDescData
}

var file_cineflix_v1_library_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_cineflix_v1_library_proto_goTypes = []any{
	(*LibraryEntryRequest)(nil),     // 0: cineflix.v1.LibraryEntryRequest
	(*ListLibraryRequest)(nil),      // 1: cineflix.v1.ListLibraryRequest
	(*LibraryMutationResponse)(nil), // 2: cineflix.v1.LibraryMutationResponse
	(*ListLibraryResponse)(nil),     // 3: cineflix.v1.ListLibraryResponse
}
var file_cineflix_v1_library_proto_depIdxs = []int32{
	0, // 0: cineflix.v1.UserLibraryService.AddFavoriteMovie:input_type -> cineflix.v1.LibraryEntryRequest
	0, // 1: cineflix.v1.UserLibraryService.RemoveFavoriteMovie:input_type -> cineflix.v1.LibraryEntryRequest
	1, // 2: cineflix.v1.UserLibraryService.ListFavoriteMovies:input_type -> cineflix.v1.ListLibraryRequest
	0, // 3: cineflix.v1.UserLibraryService.AddWatchListMovie:input_type -> cineflix.v1.LibraryEntryRequest
	0, // 4: cineflix.v1.UserLibraryService.RemoveWatchListMovie:input_type -> cineflix.v1.LibraryEntryRequest
	1, // 5: cineflix.v1.UserLibraryService.ListWatchListMovies:input_type -> cineflix.v1.ListLibraryRequest
	2, // 6: cineflix.v1.UserLibraryService.AddFavoriteMovie:output_type -> cineflix.v1.LibraryMutationResponse
	2, // 7: cineflix.v1.UserLibraryService.RemoveFavoriteMovie:output_type -> cineflix.v1.LibraryMutationResponse
	3, // 8: cineflix.v1.UserLibraryService.ListFavoriteMovies:output_type -> cineflix.v1.ListLibraryResponse
	2, // 9: cineflix.v1.UserLibraryService.AddWatchListMovie:output_type -> cineflix.v1.LibraryMutationResponse
	2, // 10: cineflix.v1.UserLibraryService.RemoveWatchListMovie:output_type -> cineflix.v1.LibraryMutationResponse
	3, // 11: cineflix.v1.UserLibraryService.ListWatchListMovies:output_type -> cineflix.v1.ListLibraryResponse
	6, // [6:12] is the sub-list for method output_type
	0, // [0:6] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_cineflix_v1_library_proto_init() }
func file_cineflix_v1_library_proto_init() {
	if File_cineflix_v1_library_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_cineflix_v1_library_proto_rawDesc), len(file_cineflix_v1_library_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_cineflix_v1_library_proto_goTypes,
		DependencyIndexes: file_cineflix_v1_library_proto_depIdxs,
		MessageInfos:      file_cineflix_v1_library_proto_msgTypes,
	}.Build()
	File_cineflix_v1_library_proto = out.File
	file_cineflix_v1_library_proto_goTypes = nil
	file_cineflix_v1_library_proto_depIdxs = nil
}
